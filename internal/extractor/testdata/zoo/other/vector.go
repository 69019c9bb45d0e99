package other

//reflect:fields
type Vector3 struct {
	W float64
}
