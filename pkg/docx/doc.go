// Package docx writes WordprocessingML (.docx) documents.
//
// It covers the subset of the format a generated résumé needs: a single
// section with fixed page margins, paragraphs built from styled runs,
// bulleted paragraphs, bordered paragraphs, simple tables and inline
// raster images. Output is deterministic: packing the same Document twice
// yields byte-identical archives.
//
// Usage:
//
//	doc := docx.New()
//	doc.Margins = docx.UniformMargins(docx.InchesToTwip(0.5))
//	doc.Add(docx.Paragraph{Runs: []docx.Run{{Text: "Hello", Bold: true}}})
//	data, err := docx.Pack(doc)
package docx
