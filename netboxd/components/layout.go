package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func writePageStart(w io.Writer, title string, flashMessage string) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>%s - NetBox Circuits</title>
<link rel="stylesheet" href="/assets/style.css"/>
</head>
<body>
<nav>
<a href="/">Home</a>
<a href="/circuits">Circuits</a>
<a href="/providers">Providers</a>
<a href="/circuit-types">Circuit Types</a>
</nav>
`, templ.EscapeString(title))
	if err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}

	if flashMessage != "" {
		_, err = fmt.Fprintf(w, "<div class=\"flash\">%s</div>\n", templ.EscapeString(flashMessage))
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}
	}

	return nil
}

func writePageEnd(w io.Writer) error {
	_, err := io.WriteString(w, "</body>\n</html>\n")
	if err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}

	return nil
}

// page wraps a body component in the site chrome.
func page(title string, flashMessage string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writePageStart(w, title, flashMessage)
		if err != nil {
			return err
		}

		err = body.Render(ctx, w)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return writePageEnd(w)
	})
}

func Home() templ.Component {
	return page("Home", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>NetBox Circuits</h1>
<ul>
<li><a href="/circuits">Circuits</a></li>
<li><a href="/providers">Providers</a></li>
<li><a href="/circuit-types">Circuit Types</a></li>
</ul>
`)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

func NotFoundComponent(kind string) templ.Component {
	return page("Not Found", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>%s not found</h1>\n", templ.EscapeString(kind))
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

func ErrorComponent(message string) templ.Component {
	return page("Error", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>Error</h1>\n<p>%s</p>\n", templ.EscapeString(message))
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

func ForbiddenComponent() templ.Component {
	return page("Forbidden", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Forbidden</h1>\n<p>You do not have permission to do that.</p>\n")
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}
