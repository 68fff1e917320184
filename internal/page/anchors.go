package page

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const smoothScroll = "scroll-behavior: smooth"

// SmoothAnchors makes in-page links scroll smoothly to their targets instead of jumping.
// Returns hrefs of in-page links whose targets don't exist; navigating them does nothing.
func (d *Document) SmoothAnchors() []string {
	var hrefs []string
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if href := getAttr(n, "href"); strings.HasPrefix(href, "#") {
				hrefs = append(hrefs, href)
			}
		}
		return true
	})
	if len(hrefs) == 0 {
		return nil
	}

	if root := d.rootElement(); root != nil {
		style := strings.TrimSpace(getAttr(root, "style"))
		if !strings.Contains(style, smoothScroll) {
			if style != "" && !strings.HasSuffix(style, ";") {
				style += ";"
			}
			if style != "" {
				style += " "
			}
			setAttr(root, "style", style+smoothScroll)
		}
	}

	var dangling []string
	for _, href := range hrefs {
		if !d.hasTarget(href) {
			dangling = append(dangling, href)
		}
	}

	return dangling
}

// hasTarget resolves fragment to element by id or, as browsers do, by anchor name.
// Bare "#" points to the top of the page.
func (d *Document) hasTarget(href string) bool {
	fragment := strings.TrimPrefix(href, "#")
	if fragment == "" {
		return true
	}
	if unescaped, err := url.PathUnescape(fragment); err == nil {
		fragment = unescaped
	}
	if d.elementByID(fragment) != nil {
		return true
	}

	found := false
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.A && getAttr(n, "name") == fragment {
			found = true
			return false
		}
		return true
	})

	return found
}
