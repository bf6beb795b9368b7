package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_Unmarshal(t *testing.T) {
	type payload struct {
		ID FlexID `json:"room_name_id"`
	}

	cases := []struct {
		in   string
		want FlexID
	}{
		{`{"room_name_id":3}`, 3},
		{`{"room_name_id":"3"}`, 3},
		{`{"room_name_id":null}`, 0},
		{`{}`, 0},
	}
	for _, tc := range cases {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(tc.in), &p), tc.in)
		assert.Equal(t, tc.want, p.ID, tc.in)
	}

	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"room_name_id":"abc"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"room_name_id":-1}`), &p))
}
