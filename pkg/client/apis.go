package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/kak-tus/fdpowermon/pkg/types"
)

func (c *Client) GetStatus() (*types.Status, error) {
	ret, err := c.Get("/status")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get status")
	}

	var s types.Status
	if err := json.Unmarshal([]byte(ret), &s); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal status")
	}
	return &s, nil
}

func (c *Client) GetThemes() ([]types.ThemeInfo, error) {
	ret, err := c.Get("/themes")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get themes")
	}

	var themes []types.ThemeInfo
	if err := json.Unmarshal([]byte(ret), &themes); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal themes")
	}
	return themes, nil
}

// SetDefaultTheme switches the running monitor to the theme registered
// under name. It fails with ErrNotFound for unknown names.
func (c *Client) SetDefaultTheme(name string) (string, error) {
	payload, err := json.Marshal(name)
	if err != nil {
		return "", err
	}
	ret, err := c.Put("/default-theme", string(payload))
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to set default theme")
	}
	return unquote(ret), nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	return unquote(ret), nil
}

func unquote(ret string) string {
	var s string
	if err := json.Unmarshal([]byte(ret), &s); err != nil {
		return ret
	}
	return s
}
