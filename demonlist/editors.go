package demonlist

import (
	"context"
)

// Editor is a list staff member, display data only.
type Editor struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Link string `json:"link,omitempty"`
}

// LoadEditors fetches the editor roster. The document is optional.
func LoadEditors(ctx context.Context, store Store, listData ListData) ([]Editor, error) {
	var editors []Editor
	if err := store.Get(ctx, listData.EditorsKey, &editors); err != nil {
		return nil, err
	}
	return editors, nil
}
