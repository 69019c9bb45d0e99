package shapes

type ignored struct{}
