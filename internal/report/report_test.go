package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/berckan/lookalike/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	v := model.NewVariant("example", "examp1e.com", model.TechniqueLeetspeak, "o->0")
	v.Registered = true
	v.TrustLevel = model.TrustHighRisk
	v.RiskScore = 85
	v.Registrar = "Example Registrar"
	age := 45
	v.AgeDays = &age
	v.DNSRecords[model.RecordA] = []string{"1.2.3.4"}

	unreg := model.NewVariant("example", "exemple.com", model.TechniqueVowelSwap, "a->e")

	return New("example.com", 730, []model.Variant{v, unreg})
}

func TestWriteJSON_AllKeysPresent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	variants, ok := decoded["variants"].([]interface{})
	require.True(t, ok)
	require.Len(t, variants, 2)

	unregistered := variants[1].(map[string]interface{})
	assert.Contains(t, unregistered, "age_days")
	assert.Contains(t, unregistered, "creation_date")
	assert.Nil(t, unregistered["age_days"])
}

func TestWriteCSV_HeaderAndRowCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "candidate", rows[0][0])
	assert.Equal(t, "examp1e.com", rows[1][0])
}

func TestWriteConsole_SkipsUnregisteredByDefault(t *testing.T) {
	var buf bytes.Buffer
	WriteConsole(&buf, sampleReport(), false)
	out := buf.String()
	assert.Contains(t, out, "examp1e.com")
	assert.NotContains(t, out, "exemple.com")
}

func TestWriteConsole_IncludesUnregisteredWhenAsked(t *testing.T) {
	var buf bytes.Buffer
	WriteConsole(&buf, sampleReport(), true)
	assert.Contains(t, buf.String(), "exemple.com")
}

func TestWriteHTML_RendersWithoutError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleReport()))
	assert.Contains(t, buf.String(), "examp1e.com")
	assert.Contains(t, buf.String(), "45")
}
