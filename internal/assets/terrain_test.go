package assets

import (
	"errors"
	"testing"
)

// buildTerrainFile returns an all-sea terrain image and the pixel slice
// inside it for direct writes.
func buildTerrainFile() ([]byte, []byte) {
	data := make([]byte, terrainHeaderSize+TerrainWidth*TerrainHeight)
	pixels := data[terrainHeaderSize:]
	for i := range pixels {
		pixels[i] = TerrainSea
	}
	return data, pixels
}

func TestParseWorldMapTerrain(t *testing.T) {
	data, pixels := buildTerrainFile()
	pixels[5+2*TerrainWidth] = TerrainMountain1

	terrain, err := ParseWorldMapTerrain(data)
	if err != nil {
		t.Fatalf("ParseWorldMapTerrain() returned error: %v", err)
	}

	if got := terrain.At(5, 2); got != TerrainMountain1 {
		t.Errorf("At(5, 2) = %d, want %d", got, TerrainMountain1)
	}
	if got := terrain.At(6, 2); got != TerrainSea {
		t.Errorf("At(6, 2) = %d, want sea", got)
	}
}

func TestParseWorldMapTerrain_Short(t *testing.T) {
	data, _ := buildTerrainFile()
	if _, err := ParseWorldMapTerrain(data[:1000]); !errors.Is(err, ErrFormat) {
		t.Errorf("ParseWorldMapTerrain() error = %v, want ErrFormat", err)
	}
}

func TestWorldMapTerrain_FailSafeAt(t *testing.T) {
	// Linear pixel index of the shift-corrected sample for a screen point.
	shifted := func(x, y int) int {
		return x + y*TerrainWidth - 12
	}

	t.Run("corrected pixel is land", func(t *testing.T) {
		data, pixels := buildTerrainFile()
		pixels[shifted(100, 100)] = TerrainDesert1
		terrain, err := ParseWorldMapTerrain(data)
		if err != nil {
			t.Fatalf("ParseWorldMapTerrain() returned error: %v", err)
		}
		if got := terrain.FailSafeAt(100, 100); got != TerrainDesert1 {
			t.Errorf("FailSafeAt(100, 100) = %d, want %d", got, TerrainDesert1)
		}
	})

	t.Run("probes find land below first", func(t *testing.T) {
		data, pixels := buildTerrainFile()
		pixels[shifted(50, 51)] = TerrainTemperate2
		pixels[shifted(50, 49)] = TerrainMountain1
		terrain, err := ParseWorldMapTerrain(data)
		if err != nil {
			t.Fatalf("ParseWorldMapTerrain() returned error: %v", err)
		}
		// Both neighbors at distance 1 are land; below wins.
		if got := terrain.FailSafeAt(50, 50); got != TerrainTemperate2 {
			t.Errorf("FailSafeAt(50, 50) = %d, want %d", got, TerrainTemperate2)
		}
	})

	t.Run("probe radius grows", func(t *testing.T) {
		data, pixels := buildTerrainFile()
		// Every neighbor at distance 1 is sea; above wins over right at
		// distance 2.
		pixels[shifted(50, 48)] = TerrainMountain2
		pixels[shifted(52, 50)] = TerrainDesert1
		terrain, err := ParseWorldMapTerrain(data)
		if err != nil {
			t.Fatalf("ParseWorldMapTerrain() returned error: %v", err)
		}
		got := terrain.FailSafeAt(50, 50)
		if got != TerrainMountain2 {
			t.Errorf("FailSafeAt(50, 50) = %d, want %d", got, TerrainMountain2)
		}
		climate, err := TerrainClimate(got)
		if err != nil {
			t.Fatalf("TerrainClimate(%d) returned error: %v", got, err)
		}
		if climate != ClimateMountain {
			t.Errorf("TerrainClimate(%d) = %s, want %s", got, climate, ClimateMountain)
		}
	})

	t.Run("all sea falls back to temperate", func(t *testing.T) {
		data, _ := buildTerrainFile()
		terrain, err := ParseWorldMapTerrain(data)
		if err != nil {
			t.Fatalf("ParseWorldMapTerrain() returned error: %v", err)
		}
		if got := terrain.FailSafeAt(160, 100); got != TerrainTemperate1 {
			t.Errorf("FailSafeAt(160, 100) = %d, want %d", got, TerrainTemperate1)
		}
	})

	t.Run("shift wraps at the map start", func(t *testing.T) {
		data, pixels := buildTerrainFile()
		// (5,0) corrected lands 7 pixels before the start, wrapping to the
		// end of the map.
		pixels[TerrainWidth*TerrainHeight-7] = TerrainDesert2
		terrain, err := ParseWorldMapTerrain(data)
		if err != nil {
			t.Fatalf("ParseWorldMapTerrain() returned error: %v", err)
		}
		if got := terrain.FailSafeAt(5, 0); got != TerrainDesert2 {
			t.Errorf("FailSafeAt(5, 0) = %d, want %d", got, TerrainDesert2)
		}
	})
}

func TestTerrainClimate(t *testing.T) {
	tests := []struct {
		index uint8
		want  ClimateType
	}{
		{TerrainTemperate1, ClimateTemperate},
		{TerrainTemperate2, ClimateTemperate},
		{TerrainMountain1, ClimateMountain},
		{TerrainMountain2, ClimateMountain},
		{TerrainDesert1, ClimateDesert},
		{TerrainDesert2, ClimateDesert},
	}
	for _, tt := range tests {
		got, err := TerrainClimate(tt.index)
		if err != nil {
			t.Errorf("TerrainClimate(%d) returned error: %v", tt.index, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TerrainClimate(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}

	if _, err := TerrainClimate(TerrainSea); err == nil {
		t.Error("TerrainClimate(sea) should fail")
	}
	if _, err := TerrainClimate(0); err == nil {
		t.Error("TerrainClimate(0) should fail")
	}
}

func TestNormalizedTerrainIndex(t *testing.T) {
	if got := NormalizedTerrainIndex(TerrainSea); got != 0 {
		t.Errorf("NormalizedTerrainIndex(sea) = %d, want 0", got)
	}
	if got := NormalizedTerrainIndex(TerrainTemperate1); got != 1 {
		t.Errorf("NormalizedTerrainIndex(temperate1) = %d, want 1", got)
	}
	if got := NormalizedTerrainIndex(TerrainDesert2); got != 251 {
		t.Errorf("NormalizedTerrainIndex(desert2) = %d, want 251", got)
	}
}
