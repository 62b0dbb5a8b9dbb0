package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// MaxDepth bounds how many containers may nest. Zero, the default, means
// no bound.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}
