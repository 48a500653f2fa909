package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJustificationsCSV(t *testing.T) {
	svc := NewExportService(newStore(t), nil, nil, nil)

	data, err := svc.JustificationsCSV(context.Background())
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"))
	assert.Contains(t, content, "Estudiante,Materia,Fecha,Motivo,Estado,Solicitada")
	assert.Contains(t, content, "Benitez, Clara")
	assert.Contains(t, content, "PENDING")
}

func TestFinalsPDF(t *testing.T) {
	svc := NewExportService(newStore(t), nil, nil, nil)

	data, err := svc.FinalsPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
