package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "plain numeric", raw: "42", want: 42},
		{name: "zero", raw: "0", want: 0},
		{name: "empty", raw: "", wantErr: true},
		{name: "alphabetic", raw: "abc", wantErr: true},
		{name: "mixed", raw: "12a", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
