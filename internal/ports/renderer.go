package ports

import "github.com/aalvaropc/ryujin/internal/domain"

// Renderer turns a render context into the compose descriptor and its README.
type Renderer interface {
	RenderCompose(rc domain.RenderContext) ([]byte, error)
	RenderReadme(rc domain.RenderContext) ([]byte, error)
}
