package identity

import (
	"testing"

	"blogmosaic/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		user    *model.UserRecord
		want    string
		wantErr error
	}{
		{
			name: "primary id wins",
			user: &model.UserRecord{PrimaryID: "p", AltID: "a", LegacyID: "l"},
			want: "p",
		},
		{
			name: "alt id when primary missing",
			user: &model.UserRecord{AltID: "x"},
			want: "x",
		},
		{
			name: "legacy id as last resort",
			user: &model.UserRecord{LegacyID: "l"},
			want: "l",
		},
		{
			name: "canonical id short-circuits the chain",
			user: &model.UserRecord{ID: "c", PrimaryID: "p"},
			want: "c",
		},
		{
			name:    "no identifier at all",
			user:    &model.UserRecord{Name: "anon"},
			wantErr: ErrNoIdentifier,
		},
		{
			name:    "nil user",
			user:    nil,
			wantErr: ErrNoIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	u := &model.UserRecord{AltID: "abc"}
	got, err := Normalize(u)
	assert.NoError(t, err)
	assert.Equal(t, "abc", got.ID)

	_, err = Normalize(&model.UserRecord{})
	assert.ErrorIs(t, err, ErrNoIdentifier)
}
