package common

import (
	"encoding/json"
	"robocompany/errdefs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotUnmarshal(t *testing.T) {
	t.Run("maps the three fields verbatim", func(t *testing.T) {
		var robot Robot
		err := json.Unmarshal([]byte(`{"code":"R-1","position":"Welder","img":"http://x/1.png"}`), &robot)
		require.NoError(t, err)

		assert.Equal(t, Robot{Code: "R-1", Position: "Welder", Img: "http://x/1.png"}, robot)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		var robot Robot
		err := json.Unmarshal([]byte(`{"code":"R-2","position":"Painter","img":"http://x/2.png","id":7}`), &robot)
		require.NoError(t, err)

		assert.Equal(t, "R-2", robot.Code)
	})

	t.Run("keeps empty strings", func(t *testing.T) {
		var robot Robot
		err := json.Unmarshal([]byte(`{"code":"","position":"","img":""}`), &robot)
		require.NoError(t, err)

		assert.Equal(t, Robot{}, robot)
	})

	for _, field := range []string{"code", "position", "img"} {
		field := field
		t.Run("fails when "+field+" is missing", func(t *testing.T) {
			payload := map[string]string{"code": "R-1", "position": "Welder", "img": "http://x/1.png"}
			delete(payload, field)
			data, err := json.Marshal(payload)
			require.NoError(t, err)

			var robot Robot
			err = json.Unmarshal(data, &robot)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errdefs.ErrMissingFromPayload))
			assert.Contains(t, err.Error(), field)
		})
	}

	t.Run("treats null as missing", func(t *testing.T) {
		var robot Robot
		err := json.Unmarshal([]byte(`{"code":null,"position":"Welder","img":"http://x/1.png"}`), &robot)
		assert.ErrorIs(t, err, errdefs.ErrMissingFromPayload)
	})

	t.Run("a bad element fails the whole array", func(t *testing.T) {
		var robots []Robot
		err := json.Unmarshal([]byte(`[{"code":"R-1","position":"Welder","img":"a"},{"position":"Painter","img":"b"}]`), &robots)
		assert.ErrorIs(t, err, errdefs.ErrMissingFromPayload)
	})
}
