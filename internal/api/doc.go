// Package api implements the HTTP surface of the portfolio backend.
//
// # Routes
//
//	POST   /admin/signup   open       create an admin account
//	POST   /admin/login    open       exchange credentials for a bearer token
//	POST   /project        bearer     add a project to the portfolio
//	DELETE /project        bearer     remove a project by its URL
//	GET    /projects       open       public portfolio listing
//	GET    /health         open       liveness check
//
// Every error response is a JSON object with a single "error" string field;
// no stack traces or driver errors reach the client. Handlers convert faults
// locally and nothing propagates to a process-level handler.
//
// Protected routes are wrapped by auth.RequireToken; handlers behind it can
// read the authenticated admin's claims with auth.FromContext.
package api
