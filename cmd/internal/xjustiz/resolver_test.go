package xjustiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestResolveStructuredReference(t *testing.T) {
	ref := RegisterReference{
		CourtSenderCode:        strptr("R3306"),
		RegisterCode:           strptr("HRB"),
		RegisterNumber:         strptr("240593"),
		RegisterNumberAddition: strptr("B"),
	}

	id, err := ref.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "R3306_HRB240593B", id)
}

func TestResolveOmitsAbsentAddition(t *testing.T) {
	ref := RegisterReference{
		CourtSenderCode: strptr("R3306"),
		RegisterCode:    strptr("VR"),
		RegisterNumber:  strptr("31923"),
	}

	id, err := ref.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "R3306_VR31923", id)
}

func TestResolveIsDeterministic(t *testing.T) {
	ref := func() RegisterReference {
		return RegisterReference{
			CourtSenderCode:        strptr("R1101"),
			RegisterCode:           strptr("HRA"),
			RegisterNumber:         strptr("42"),
			RegisterNumberAddition: strptr("X"),
		}
	}

	a := ref()
	b := ref()
	ida, err := a.Resolve()
	require.NoError(t, err)
	idb, err := b.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ida, idb)
}

func TestResolveFallbackParsesFreeText(t *testing.T) {
	ref := RegisterReference{
		CourtSenderCode: strptr("R3306"),
		FreeText:        strptr("HRB 12345 B"),
	}

	id, err := ref.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "R3306_HRB12345B", id)
	assert.Equal(t, "HRB", *ref.RegisterCode)
	assert.Equal(t, "12345", *ref.RegisterNumber)
	assert.Equal(t, "B", *ref.RegisterNumberAddition)
}

func TestResolveFallbackPrefersFreeTextOverSenderReference(t *testing.T) {
	ref := RegisterReference{
		CourtSenderCode:     strptr("R3306"),
		FreeText:            strptr("HRB 1 A"),
		SenderFileReference: strptr("HRB 2 B"),
	}

	id, err := ref.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "R3306_HRB1A", id)
}

func TestResolveFallbackUsesSenderReference(t *testing.T) {
	ref := RegisterReference{
		CourtSenderCode:     strptr("R3306"),
		SenderFileReference: strptr("GnR 99 B"),
	}

	id, err := ref.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "R3306_GnR99B", id)
}

func TestResolveUnmatchedFreeTextBecomesTheNumber(t *testing.T) {
	ref := RegisterReference{
		CourtSenderCode: strptr("R3306"),
		FreeText:        strptr("Az. unleserlich"),
	}

	id, err := ref.Resolve()
	require.NoError(t, err)

	// Accepted, not an error: the raw text ends up embedded in the key.
	assert.Equal(t, "R3306_Az. unleserlich", id)
	assert.Nil(t, ref.RegisterCode)
	assert.Nil(t, ref.RegisterNumberAddition)
}

func TestResolveErrorsWithNothingToWorkWith(t *testing.T) {
	ref := RegisterReference{CourtSenderCode: strptr("R3306")}

	_, err := ref.Resolve()
	assert.ErrorIs(t, err, ErrNoRegisterReference)
}
