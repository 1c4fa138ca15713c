package assets

import (
	"fmt"
)

// World map terrain dimensions in pixels.
const (
	TerrainWidth  = 320
	TerrainHeight = 200
)

// terrainHeaderSize is the length of the .IMG header preceding the pixels.
const terrainHeaderSize = 12

// Palette indices used by the terrain map. Every pixel is one of these.
const (
	TerrainTemperate1 uint8 = 254
	TerrainTemperate2 uint8 = 251
	TerrainMountain1  uint8 = 249
	TerrainMountain2  uint8 = 250
	TerrainDesert1    uint8 = 252
	TerrainDesert2    uint8 = 248
	TerrainSea        uint8 = 253
)

// ClimateType is the climate of a world map location.
type ClimateType int

const (
	ClimateTemperate ClimateType = iota
	ClimateMountain
	ClimateDesert
)

func (c ClimateType) String() string {
	switch c {
	case ClimateTemperate:
		return "Temperate"
	case ClimateMountain:
		return "Mountain"
	case ClimateDesert:
		return "Desert"
	default:
		return "Unknown"
	}
}

// TerrainClimate classifies a terrain pixel. Sea pixels have no climate and
// are an error here; callers that may land on sea use FailSafeAt first.
func TerrainClimate(index uint8) (ClimateType, error) {
	switch index {
	case TerrainTemperate1, TerrainTemperate2:
		return ClimateTemperate, nil
	case TerrainMountain1, TerrainMountain2:
		return ClimateMountain, nil
	case TerrainDesert1, TerrainDesert2:
		return ClimateDesert, nil
	default:
		return 0, fmt.Errorf("bad terrain index %d", index)
	}
}

// NormalizedTerrainIndex rebases a terrain pixel so the sea index becomes
// zero, the form other game tables key on.
func NormalizedTerrainIndex(index uint8) uint8 {
	return index - TerrainSea
}

// WorldMapTerrain is the 320x200 terrain pixel map.
type WorldMapTerrain struct {
	indices []byte
}

// ParseWorldMapTerrain decodes the terrain image file: a 12-byte header
// followed by one palette index per pixel.
func ParseWorldMapTerrain(data []byte) (*WorldMapTerrain, error) {
	const pixelCount = TerrainWidth * TerrainHeight
	if len(data) < terrainHeaderSize+pixelCount {
		return nil, fmt.Errorf("%w: terrain image is %d bytes, want at least %d",
			ErrFormat, len(data), terrainHeaderSize+pixelCount)
	}
	return &WorldMapTerrain{
		indices: data[terrainHeaderSize : terrainHeaderSize+pixelCount],
	}, nil
}

// At returns the raw terrain pixel at the given world map coordinates.
func (t *WorldMapTerrain) At(x, y int) uint8 {
	return t.indices[x+y*TerrainWidth]
}

// shiftedAt samples the pixel 12 positions to the left in linear order,
// wrapping around the whole map. The terrain image is drawn shifted relative
// to the world map screen, so callers probing by screen coordinates need the
// correction.
func (t *WorldMapTerrain) shiftedAt(x, y int) uint8 {
	const pixelCount = TerrainWidth * TerrainHeight
	i := x + y*TerrainWidth - 12
	if i < 0 {
		i += pixelCount
	} else if i >= pixelCount {
		i -= pixelCount
	}
	return t.indices[i]
}

// FailSafeAt returns usable terrain at or near the given coordinates. When
// the corrected pixel is sea it probes below, above, right, and left of the
// point at growing distances until a land pixel turns up, and falls back to
// temperate terrain when the whole sweep finds nothing.
func (t *WorldMapTerrain) FailSafeAt(x, y int) uint8 {
	if pixel := t.shiftedAt(x, y); pixel != TerrainSea {
		return pixel
	}

	for dist := 1; dist < 200; dist++ {
		probes := [4]uint8{
			t.shiftedAt(x, y+dist),
			t.shiftedAt(x, y-dist),
			t.shiftedAt(x+dist, y),
			t.shiftedAt(x-dist, y),
		}
		for _, pixel := range probes {
			if pixel != TerrainSea {
				return pixel
			}
		}
	}

	return TerrainTemperate1
}
