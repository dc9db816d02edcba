package codec

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/zconf/debug"
	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/format"
)

// Patch applies an RFC 6902 JSON Patch document to v.
func Patch(v flat.Value, patch []byte) (flat.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return flat.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Codec() {
		debug.Logf("applying %d json patch operations", len(ops))
	}
	return applyJSON(v, ops.Apply)
}

// MergePatch applies an RFC 7396 JSON Merge Patch document to v.
func MergePatch(v flat.Value, patch []byte) (flat.Value, error) {
	if !json.Valid(patch) {
		return flat.Value{}, fmt.Errorf("%w: merge patch is not valid json", ErrPatch)
	}
	return applyJSON(v, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func applyJSON(v flat.Value, apply func([]byte) ([]byte, error)) (flat.Value, error) {
	doc, err := json.Marshal(flat.ToAny(v))
	if err != nil {
		return flat.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := apply(doc)
	if err != nil {
		return flat.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := Decode(out, format.JSONFormat)
	if err != nil {
		return flat.Value{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
