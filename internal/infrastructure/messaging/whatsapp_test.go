package messaging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	linker := NewWhatsAppLinker("55", "FieldOps")

	t.Run("normalizes phone and escapes message", func(t *testing.T) {
		link := linker.Link("(11) 98765-4321", "Olá João")

		assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="), link)
		assert.NotContains(t, link, " ")
	})

	t.Run("already prefixed phone is not doubled", func(t *testing.T) {
		link := linker.Link("+55 11 98765-4321", "oi")

		assert.Contains(t, link, "wa.me/5511987654321?")
	})

	t.Run("empty phone yields no link", func(t *testing.T) {
		assert.Empty(t, linker.Link("n/a", "oi"))
	})
}

func TestAcceptanceLink(t *testing.T) {
	linker := NewWhatsAppLinker("55", "FieldOps")

	link := linker.AcceptanceLink("11987654321", "Maria", 42)

	assert.Contains(t, link, "wa.me/5511987654321")
	assert.Contains(t, link, "%2342") // order number survives escaping
}

func TestRejectionLink(t *testing.T) {
	linker := NewWhatsAppLinker("55", "FieldOps")

	link := linker.RejectionLink("11987654321", "Maria")

	assert.Contains(t, link, "wa.me/5511987654321")
	assert.NotEmpty(t, link)
}
