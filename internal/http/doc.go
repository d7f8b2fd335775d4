// Package http provides the HTTP surface consumed by the calendar UI.
//
// Endpoints:
//   - GET /events?view={day|week|month}&date=YYYY-MM-DD (or ?start=&end=;
//     nav=next|previous steps the anchor): events in the resolved window plus
//     the using_fallback/configured flags. Read failures never surface as
//     errors; the fallback dataset is served instead.
//   - GET /events/layout?layout={desktop|mobile}&...: per-day render
//     instructions for the weekly grid (positioned blocks on desktop,
//     coarse-slot stacked cells on mobile).
//   - POST /events: creates an event from a JSON body, or from a multipart
//     form with an optional "image" part that is validated, thumbnailed and
//     compressed before upload.
//   - PATCH /events/{id}: partial update. DELETE /events/{id}: removes the
//     record, then best-effort removes its image blobs.
//
// Request/response DTOs live alongside their handlers so tests and
// documentation share the same ground truth.
package http
