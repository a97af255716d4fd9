package rendering

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Renderer renders gomponents nodes, either to bytes for fragments or as an
// echo.Renderer for full pages.
type Renderer interface {
	// RenderComponent renders a node to a slice of bytes. Useful for HTMX fragments.
	RenderComponent(node g.Node) ([]byte, error)

	// RenderPage writes a complete HTML response.
	RenderPage(c echo.Context, status int, node g.Node) error
}

// NodeRenderer is the echo.Renderer installed on the docs server.
type NodeRenderer struct{}

// NewNodeRenderer creates a new NodeRenderer instance.
func NewNodeRenderer() *NodeRenderer {
	return &NodeRenderer{}
}

func (r *NodeRenderer) render(data any, w io.Writer) error {
	node, ok := data.(g.Node)
	if !ok {
		return fmt.Errorf("unsupported component type: %T, must implement gomponents.Node", data)
	}
	return node.Render(w)
}

// RenderComponent implements the Renderer interface.
func (r *NodeRenderer) RenderComponent(node g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(node, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The node is rendered to a
// buffer first so a failure can still produce an error status.
func (r *NodeRenderer) RenderPage(c echo.Context, status int, node g.Node) error {
	body, err := r.RenderComponent(node)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for c.Render(status, name, node). name is
// ignored; the node is passed as data.
func (r *NodeRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(data, w)
}
