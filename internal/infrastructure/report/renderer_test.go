package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/logger"
)

type captureStore struct {
	data        []byte
	contentType string
	pathHint    string
	url         string
	err         error
}

func (s *captureStore) Store(ctx context.Context, data []byte, contentType, pathHint string) (string, error) {
	s.data = data
	s.contentType = contentType
	s.pathHint = pathHint
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func closedOrder(t *testing.T) *order.ServiceOrder {
	t.Helper()
	o, err := order.NewServiceOrder("João Lima", "5511912345678", "joao@example.com", vo.CategoryHydraulic, "Rua B 20, Campinas", "Cano estourado")
	require.NoError(t, err)
	require.NoError(t, o.SetID(42))
	require.NoError(t, o.SetCosts(15000, 3000))
	o.UpdateWorkNotes("Troca do registro **geral**")
	o.AssignTechnicians([]string{"Carlos", "Ana"})
	require.NoError(t, o.AddPhoto(vo.BucketAfter, "/uploads/after/x.jpg"))
	_, err = o.Transition(vo.StatusQuote)
	require.NoError(t, err)
	_, err = o.Transition(vo.StatusExecuting)
	require.NoError(t, err)
	_, err = o.Transition(vo.StatusExecuted)
	require.NoError(t, err)
	_, err = o.Transition(vo.StatusClosed)
	require.NoError(t, err)
	return o
}

func TestRender(t *testing.T) {
	store := &captureStore{url: "/uploads/reports/abc.html"}
	renderer, err := NewRenderer(store, logger.NewLogger())
	require.NoError(t, err)

	url, err := renderer.Render(context.Background(), closedOrder(t))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/reports/abc.html", url)
	assert.Equal(t, "text/html", store.contentType)
	assert.Equal(t, "reports", store.pathHint)

	html := string(store.data)
	assert.Contains(t, html, "Ordem de Serviço #42")
	assert.Contains(t, html, "João Lima")
	assert.Contains(t, html, "Carlos, Ana")
	assert.Contains(t, html, "R$ 150,00")
	assert.Contains(t, html, "R$ 30,00")
	assert.Contains(t, html, "R$ 180,00")
	// Work notes come through the markdown pipeline.
	assert.Contains(t, html, "<strong>geral</strong>")
	assert.Contains(t, html, "/uploads/after/x.jpg")
}

func TestRenderMarkdownIsSanitized(t *testing.T) {
	store := &captureStore{url: "/uploads/reports/abc.html"}
	renderer, err := NewRenderer(store, logger.NewLogger())
	require.NoError(t, err)

	o := closedOrder(t)
	o.UpdateWorkNotes(`<script>alert(1)</script> ok`)

	_, err = renderer.Render(context.Background(), o)

	require.NoError(t, err)
	assert.NotContains(t, string(store.data), "<script>")
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{18000, "R$ 180,00"},
		{123456, "R$ 1234,56"},
		{-150, "-R$ 1,50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}
