package noto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noto-news/noto"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := noto.Errorf(noto.ENOTFOUND, "no stats for domain %q", "lci.fr")

	assert.Equal(t, noto.ENOTFOUND, noto.ErrorCode(err))
	assert.Equal(t, "no stats for domain \"lci.fr\"", noto.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, noto.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, noto.EINTERNAL, noto.ErrorCode(errors.New("connection reset")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, noto.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", noto.ErrorMessage(errors.New("connection reset")))
}

func TestBriefValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid brief", func(t *testing.T) {
		t.Parallel()

		brief := &noto.Brief{
			ID:        "b-1",
			UserName:  "Camille",
			Sections:  []noto.BriefSection{{Interest: "sport", Sentences: []string{"Une phrase."}}},
			CreatedAt: time.Now(),
		}
		require.NoError(t, brief.Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		t.Parallel()

		brief := &noto.Brief{
			Sections: []noto.BriefSection{{Interest: "sport", Sentences: []string{"Une phrase."}}},
		}
		err := brief.Validate()

		require.Error(t, err)
		assert.Equal(t, noto.EINVALID, noto.ErrorCode(err))
	})

	t.Run("no sections", func(t *testing.T) {
		t.Parallel()

		brief := &noto.Brief{ID: "b-1"}
		err := brief.Validate()

		require.Error(t, err)
		assert.Equal(t, noto.EINVALID, noto.ErrorCode(err))
	})
}
