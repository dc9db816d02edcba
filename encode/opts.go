package encode

type EncodeOption func(*EncState)

// Depth sets the depth at which the root is rendered. Indentation of
// nested lines starts from there.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
