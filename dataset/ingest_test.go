package dataset

import (
	"archive/zip"
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnyCSV(t *testing.T) {
	csvData := []byte("nome, idade ,cidade\nAna,31,SP\nBruno,,RJ\nCarla,45,SP\n")

	datasets, err := ReadAny([]File{{Name: "clientes.csv", Data: csvData}})
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	d := datasets["clientes"]
	require.NotNil(t, d)
	assert.Equal(t, "clientes", d.Name)
	assert.Equal(t, 3, d.Rows)
	require.Len(t, d.Columns, 3)

	// Header cells are trimmed.
	assert.Equal(t, "idade", d.Columns[1].Name)

	idade := d.Column("idade")
	require.NotNil(t, idade)
	assert.Equal(t, Numeric, idade.Kind)
	assert.Equal(t, 31.0, idade.Floats[0])
	assert.True(t, math.IsNaN(idade.Floats[1]))

	cidade := d.Column("cidade")
	require.NotNil(t, cidade)
	assert.Equal(t, Categorical, cidade.Kind)
}

func TestReadAnySemicolonAndDecimalComma(t *testing.T) {
	csvData := []byte("produto;preco\nArroz;3,14\nFeijao;7,5\n")

	datasets, err := ReadAny([]File{{Name: "precos.csv", Data: csvData}})
	require.NoError(t, err)

	preco := datasets["precos"].Column("preco")
	require.NotNil(t, preco)
	require.Equal(t, Numeric, preco.Kind)
	assert.InDelta(t, 3.14, preco.Floats[0], 1e-9)
	assert.InDelta(t, 7.5, preco.Floats[1], 1e-9)
}

func TestReadAnyTabDelimited(t *testing.T) {
	csvData := []byte("a\tb\n1\t2\n")

	datasets, err := ReadAny([]File{{Name: "tabela.csv", Data: csvData}})
	require.NoError(t, err)
	require.Len(t, datasets["tabela"].Columns, 2)
}

func TestReadAnyZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("dados/vendas.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("mes,total\njan,100\nfev,200\n"))
	require.NoError(t, err)

	w, err = zw.Create("leiame.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("ignorado"))
	require.NoError(t, err)

	require.NoError(t, zw.Close())

	datasets, err := ReadAny([]File{{Name: "upload.zip", Data: buf.Bytes()}})
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	d := datasets["vendas"]
	require.NotNil(t, d)
	assert.Equal(t, 2, d.Rows)
}

func TestReadAnyDuplicateNameLastWins(t *testing.T) {
	first := []byte("a\n1\n")
	second := []byte("a\n1\n2\n")

	datasets, err := ReadAny([]File{
		{Name: "dados.csv", Data: first},
		{Name: "relatorios/dados.csv", Data: second},
	})
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	assert.Equal(t, 2, datasets["dados"].Rows)
}

func TestReadAnyInvalidZip(t *testing.T) {
	_, err := ReadAny([]File{{Name: "quebrado.zip", Data: []byte("not a zip")}})
	assert.Error(t, err)
}

func TestReadAnySkipsUnknownExtensions(t *testing.T) {
	datasets, err := ReadAny([]File{{Name: "notas.txt", Data: []byte("x")}})
	require.NoError(t, err)
	assert.Empty(t, datasets)
}

func TestBuildColumnTyping(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want Kind
	}{
		{"all numeric", []string{"1", "2.5", "3"}, Numeric},
		{"numeric with missing", []string{"1", "", "3"}, Numeric},
		{"mixed", []string{"1", "abc"}, Categorical},
		{"all missing", []string{"", ""}, Categorical},
		{"decimal comma", []string{"1,5", "2,25"}, Numeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := buildColumn("c", tt.raw)
			assert.Equal(t, tt.want, c.Kind)
		})
	}
}

func TestDatasetName(t *testing.T) {
	assert.Equal(t, "vendas", datasetName("vendas.csv"))
	assert.Equal(t, "vendas", datasetName("pasta/vendas.csv"))
	assert.Equal(t, "vendas", datasetName(`C:\temp\vendas.csv`))
	assert.Equal(t, "relatorio.final", datasetName("relatorio.final.csv"))
}
