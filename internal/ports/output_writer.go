package ports

// OutputWriter stores a rendered file under the output directory.
type OutputWriter interface {
	WriteFile(dir, name string, content []byte) (path string, err error)
}
