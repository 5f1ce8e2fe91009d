package daterange

type service struct {
	anchorDay int
}
