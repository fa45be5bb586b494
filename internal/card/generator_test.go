package card

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wibes/draw-api/internal/domain"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
func (m *mockStore) PutIfAbsent(ctx context.Context, key string, r io.Reader, contentType string) error {
	args := m.Called(ctx, key, r, contentType)
	return args.Error(0)
}
func (m *mockStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

func testParticipant() *domain.Participant {
	return &domain.Participant{
		ParticipantID: "01HX5Z",
		Name:          "Asha Rao",
		Phone:         "+91 9000000001",
	}
}

func TestEnsure_SkipsWhenCardExists(t *testing.T) {
	st := &mockStore{}
	st.On("Exists", mock.Anything, "cards/Asha Rao_01HX5Z.png").Return(true, nil)

	err := NewGenerator(st).Ensure(context.Background(), testParticipant())

	require.NoError(t, err)
	st.AssertNotCalled(t, "PutIfAbsent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsure_WritesPNGWhenMissing(t *testing.T) {
	st := &mockStore{}
	st.On("Exists", mock.Anything, "cards/Asha Rao_01HX5Z.png").Return(false, nil)
	st.On("PutIfAbsent", mock.Anything, "cards/Asha Rao_01HX5Z.png", mock.Anything, "image/png").Return(nil)

	err := NewGenerator(st).Ensure(context.Background(), testParticipant())

	require.NoError(t, err)
	st.AssertExpectations(t)
}

func TestEnsure_WritesEvenWhenExistenceCheckFails(t *testing.T) {
	// The pre-check is an optimisation; a failed HeadObject must not block
	// the conditional write.
	st := &mockStore{}
	st.On("Exists", mock.Anything, mock.Anything).Return(false, errors.New("head failed"))
	st.On("PutIfAbsent", mock.Anything, mock.Anything, mock.Anything, "image/png").Return(nil)

	err := NewGenerator(st).Ensure(context.Background(), testParticipant())

	require.NoError(t, err)
	st.AssertExpectations(t)
}

func TestEnsure_SurfacesStoreError(t *testing.T) {
	st := &mockStore{}
	st.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	st.On("PutIfAbsent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket gone"))

	err := NewGenerator(st).Ensure(context.Background(), testParticipant())

	assert.ErrorContains(t, err, "store card")
}
