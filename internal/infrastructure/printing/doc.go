// Package printing renders invoices and contracts as PDF documents.
//
// Rendering happens in two steps. A layout (InvoiceLayout, ContractLayout)
// turns a domain aggregate into a right-to-left Arabic HTML page, and a
// PDFRenderer prints that page on A4 paper. ChromedpRenderer drives a
// headless Chrome over the DevTools protocol for the second step.
//
// DocumentGenerator combines both and has no side effects: storing the
// result is up to the caller.
//
//	renderer, err := NewChromedpRenderer(cfg.PDF, logger)
//	if err != nil {
//	    return err
//	}
//	defer renderer.Close()
//
//	gen := NewDocumentGenerator(renderer, logger)
//	pdf, err := gen.RenderInvoice(ctx, invoice)
package printing
