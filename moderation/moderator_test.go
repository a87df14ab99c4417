package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"soundbridge/errors"
)

func newModeratorUnderTest(t *testing.T) *Moderator {
	t.Helper()
	m, err := NewModerator([]string{"badword", "slur"}, '*')
	require.NoError(t, err)
	return m
}

func TestModerator_Censor(t *testing.T) {
	t.Run("should star out a plain match and keep the rest", func(t *testing.T) {
		req := require.New(t)
		m := newModeratorUnderTest(t)

		req.Equal("hey ******* there", m.Censor("hey badword there"))
	})

	t.Run("should catch casing and leet substitutions", func(t *testing.T) {
		req := require.New(t)
		m := newModeratorUnderTest(t)

		req.Equal("*******", m.Censor("BadWord"))
		req.Equal("*******", m.Censor("b4dw0rd"))
		req.Equal("****", m.Censor("5lur"))
	})

	t.Run("should catch separator padding and star the padding too", func(t *testing.T) {
		req := require.New(t)
		m := newModeratorUnderTest(t)

		req.Equal("*************", m.Censor("b.a.d.w.o.r.d"))
		req.Equal("you ************* you", m.Censor("you b a d w o r d you"))
	})

	t.Run("should leave clean text alone", func(t *testing.T) {
		req := require.New(t)
		m := newModeratorUnderTest(t)

		req.Equal("what a lovely song", m.Censor("what a lovely song"))
		req.Equal("", m.Censor(""))
		req.Equal("!!!", m.Censor("!!!"))
	})

	t.Run("should handle several matches in one message", func(t *testing.T) {
		req := require.New(t)
		m := newModeratorUnderTest(t)

		req.Equal("**** and *******", m.Censor("slur and badword"))
	})
}

func TestNewModerator(t *testing.T) {
	t.Run("should refuse an empty word list", func(t *testing.T) {
		req := require.New(t)

		_, err := NewModerator(nil, '*')

		req.ErrorIs(err, errors.ErrEmptyWords)
	})

	t.Run("should load the embedded default list", func(t *testing.T) {
		req := require.New(t)

		m, err := NewDefaultModerator('*')

		req.NoError(err)
		req.NotContains(m.Censor("what a badword"), "badword")
	})
}
