// Package deck writes PowerPoint decks. It emits the OOXML package
// directly through archive/zip: a fixed presentation scaffold (master,
// layout, theme) plus one slide part per parsed slide, with bullet text
// and an optional illustration image or caption.
package deck
