package config_test

import (
	"rideflow/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoCodes_Decode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    config.PromoCodes
		wantErr bool
	}{
		{
			name:  "empty value",
			value: "",
			want:  config.PromoCodes{},
		},
		{
			name:  "single code is upper cased",
			value: "first10:10",
			want:  config.PromoCodes{"FIRST10": 10},
		},
		{
			name:  "multiple codes with spaces",
			value: "FIRST10:10, WEEKEND : 15 ,",
			want:  config.PromoCodes{"FIRST10": 10, "WEEKEND": 15},
		},
		{
			name:    "missing percentage",
			value:   "FIRST10",
			wantErr: true,
		},
		{
			name:    "percentage above hundred",
			value:   "FREE:150",
			wantErr: true,
		},
		{
			name:    "non numeric percentage",
			value:   "FIRST10:ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var codes config.PromoCodes

			err := codes.Decode(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, codes)
		})
	}
}
