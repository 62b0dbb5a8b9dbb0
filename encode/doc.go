// Package encode renders value trees as text.
//
// # Usage
//
//	arr := value.NewArray(
//	    value.FromInt(1),
//	    value.FromString("some text"),
//	    value.FromBool(false),
//	    value.FromFloat(1.0123),
//	)
//	s, err := encode.ToString(value.FromArray(arr))
//	// s == `[1,"some text",false,1.012300]`
//
//	// Encode with options
//	err = encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Output
//
// The output looks like JSON but is not strictly JSON:
//
//   - integers are plain decimals
//   - floats always have six digits after the point (1.012300)
//   - strings are quoted but not escaped
//   - object keys follow the object's iteration order
//   - there is no whitespace
//
// Empty values cannot be encoded and fail with value.ErrInvalidState.
//
// # Related Packages
//
//   - github.com/nepridumalnik/lazyjson/value - the document model
//   - github.com/nepridumalnik/lazyjson/native - build documents from decoded data
package encode
