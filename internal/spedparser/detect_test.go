package spedparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmaia/sped-consolidate/internal/models"
)

func TestValidateFormat(t *testing.T) {
	tempDir := t.TempDir()
	parser := newTestParser()

	validContent := strings.Join([]string{
		"",
		"|0000|017|01012023|31122023|0|EMPRESA DEMO LTDA|12345678000195|SP|",
		"|0200|COD001|PARAFUSO|789100|||UN|",
	}, "\n")
	validFile := filepath.Join(tempDir, "valid.txt")
	require.NoError(t, os.WriteFile(validFile, []byte(validContent), 0644))

	invalidFile := filepath.Join(tempDir, "invalid.txt")
	require.NoError(t, os.WriteFile(invalidFile, []byte("col1;col2\na;b\n"), 0644))

	emptyFile := filepath.Join(tempDir, "empty.txt")
	require.NoError(t, os.WriteFile(emptyFile, nil, 0644))

	valid, err := parser.ValidateFormat(validFile)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = parser.ValidateFormat(invalidFile)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = parser.ValidateFormat(emptyFile)
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = parser.ValidateFormat(filepath.Join(tempDir, "missing.txt"))
	assert.Error(t, err)
}

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    models.FileVariant
		ok      bool
	}{
		{
			name:    "ECD",
			content: "|0000|LECD|01012023|31122023|0|EMPRESA|123|SP|\n|J150|4|01|3.01|R|RECEITA BRUTA|10000,00|D|",
			want:    models.VariantECD,
			ok:      true,
		},
		{
			name:    "EFDICMS",
			content: "|0000|017|01012023|31122023|0|EMPRESA|123|SP|\n|E110|1000,00|0|0|0|200,00|0|0|0|0|0|0|0|0|0|",
			want:    models.VariantEFDICMS,
			ok:      true,
		},
		{
			name:    "EFDContrib",
			content: "|0000|006|01012023|31122023|0|EMPRESA|123|SP|\n|C100|0|1|FORN01|55|00|1|123|\n|C170|1|COD001|",
			want:    models.VariantEFDContrib,
			ok:      true,
		},
		{
			name:    "HeaderOnly",
			content: "|0000|017|01012023|31122023|0|EMPRESA|123|SP|",
			want:    "",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestParser().ParseContent(tt.content)
			variant, ok := DetectVariant(result)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, variant)
		})
	}
}

func TestDetectVariantNilResult(t *testing.T) {
	variant, ok := DetectVariant(nil)
	assert.False(t, ok)
	assert.Empty(t, variant)
}
