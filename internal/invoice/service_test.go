package invoice

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/villagekitchen/billing/internal/ledger"
)

func newTestService(t *testing.T) (*Service, *MockRenderer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	renderer := NewMockRenderer(ctrl)

	svc := NewService(renderer, testBrand)
	svc.now = func() time.Time { return time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC) }

	return svc, renderer
}

func TestService_Export_Validation(t *testing.T) {
	type testCase struct {
		name string
		snap ledger.Snapshot
		meta Metadata
	}

	tests := []testCase{
		{
			name: "EmptyCustomerName",
			snap: snapshotWithItems("Veg Biryani"),
			meta: Metadata{CustomerPhone: "123", DeliveryAddress: "addr"},
		},
		{
			name: "EmptyItemList",
			snap: ledger.Snapshot{},
			meta: validMetadata(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The renderer must not be called for rejected input.
			svc, _ := newTestService(t)

			artifact, err := svc.Export(tt.snap, tt.meta)

			require.Error(t, err)
			assert.True(t, ledger.IsValidation(err))
			assert.Nil(t, artifact)
		})
	}
}

func TestService_Export_FillsDefaults(t *testing.T) {
	svc, renderer := newTestService(t)

	var got Metadata

	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ ledger.Snapshot, meta Metadata) (*Artifact, error) {
			got = meta
			return &Artifact{Filename: "x.pdf", Data: []byte("pdf")}, nil
		})

	meta := validMetadata()
	meta.Date = time.Time{}
	meta.Number = ""

	_, err := svc.Export(snapshotWithItems("Veg Biryani"), meta)
	require.NoError(t, err)

	fixed := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, fixed, got.Date)

	millis := strconv.FormatInt(fixed.UnixMilli(), 10)
	assert.Equal(t, "VK"+millis[len(millis)-6:], got.Number)
}

func TestService_Export_KeepsSuppliedMetadata(t *testing.T) {
	svc, renderer := newTestService(t)

	want := &Artifact{Filename: "invoice.pdf", Data: []byte("pdf")}
	meta := validMetadata()

	renderer.EXPECT().
		Render(gomock.Any(), meta).
		Return(want, nil)

	artifact, err := svc.Export(snapshotWithItems("Veg Biryani"), meta)

	require.NoError(t, err)
	assert.Equal(t, want, artifact)
}

func TestService_Export_RendererError(t *testing.T) {
	svc, renderer := newTestService(t)

	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("render failed"))

	artifact, err := svc.Export(snapshotWithItems("Veg Biryani"), validMetadata())

	require.Error(t, err)
	assert.False(t, ledger.IsValidation(err))
	assert.Nil(t, artifact)
}

func TestBrandInitials(t *testing.T) {
	assert.Equal(t, "VK", brandInitials("Village Kitchen"))
	assert.Equal(t, "V", brandInitials("village"))
	assert.Equal(t, "", brandInitials(""))
}
