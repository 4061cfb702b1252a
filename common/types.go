package common

import (
	"encoding/json"
	"robocompany/errdefs"

	"github.com/pkg/errors"
)

type Robot struct {
	Code     string `json:"code"`
	Position string `json:"position"`
	Img      string `json:"img"`
}

// UnmarshalJSON rejects elements that lack one of the three robot fields,
// unknown fields are ignored.
func (r *Robot) UnmarshalJSON(data []byte) error {
	var payload struct {
		Code     *string `json:"code"`
		Position *string `json:"position"`
		Img      *string `json:"img"`
	}

	err := json.Unmarshal(data, &payload)
	if err != nil {
		return err
	}

	if payload.Code == nil {
		return errors.Wrap(errdefs.ErrMissingFromPayload, "robot.code")
	}

	if payload.Position == nil {
		return errors.Wrap(errdefs.ErrMissingFromPayload, "robot.position")
	}

	if payload.Img == nil {
		return errors.Wrap(errdefs.ErrMissingFromPayload, "robot.img")
	}

	*r = Robot{
		Code:     *payload.Code,
		Position: *payload.Position,
		Img:      *payload.Img,
	}

	return nil
}

func PrettyFormat(data interface{}) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
