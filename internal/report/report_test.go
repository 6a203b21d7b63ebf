package report

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/model"
)

func sampleReport() Report {
	return Report{
		File:      "colors.scss",
		Threshold: 10,
		Variables: 3,
		Pairs: []model.SimilarPair{{
			A:        model.ColorVariable{Name: "red", Hex: "#FF0000", Line: 1},
			B:        model.ColorVariable{Name: "red2", Hex: "#FE0101", Line: 2},
			Distance: math.Sqrt(3),
		}},
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "text", sampleReport()))

	assert.Equal(t, "Colors that are nearly identical:\nred and red2 (distance: 1.73)\n", buf.String())
}

func TestWrite_TextNoPairs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", Report{File: "x.scss", Threshold: 10}))

	assert.Equal(t, "No nearly identical colors found.\n", buf.String())
}

func TestFormatPair(t *testing.T) {
	p := model.SimilarPair{
		A:        model.ColorVariable{Name: "gray-1"},
		B:        model.ColorVariable{Name: "gray_2"},
		Distance: 8.666,
	}
	assert.Equal(t, "gray-1 and gray_2 (distance: 8.67)", FormatPair(p))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sampleReport()))

	var decoded struct {
		File      string  `json:"file"`
		Threshold float64 `json:"threshold"`
		Variables int     `json:"variables"`
		Pairs     []struct {
			A        model.ColorVariable `json:"a"`
			B        model.ColorVariable `json:"b"`
			Distance float64             `json:"distance"`
		} `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "colors.scss", decoded.File)
	assert.Equal(t, 3, decoded.Variables)
	require.Len(t, decoded.Pairs, 1)
	assert.Equal(t, "red", decoded.Pairs[0].A.Name)
	assert.Equal(t, 2, decoded.Pairs[0].B.Line)
	assert.Equal(t, 1.73, decoded.Pairs[0].Distance)
	assert.NotContains(t, buf.String(), "skipped")
}

func TestWrite_YAMLWithSkipped(t *testing.T) {
	r := sampleReport()
	r.Skipped = []model.ColorVariable{{Name: "broken", Hex: "#12345", Line: 7}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", r))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "colors.scss", decoded["file"])
	pairs := decoded["pairs"].([]interface{})
	require.Len(t, pairs, 1)
	assert.Equal(t, 1.73, pairs[0].(map[string]interface{})["distance"])

	skipped := decoded["skipped"].([]interface{})
	require.Len(t, skipped, 1)
	assert.Equal(t, "broken", skipped[0].(map[string]interface{})["name"])
}

func TestWrite_DoesNotMutateDistances(t *testing.T) {
	r := sampleReport()
	require.NoError(t, Write(&bytes.Buffer{}, "json", r))
	assert.Equal(t, math.Sqrt(3), r.Pairs[0].Distance)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", sampleReport())
	assert.Error(t, err)
}
