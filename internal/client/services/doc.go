// Package services contains the application services behind the CLI pages.
//
// Each service validates form input before any request is attempted, talks to
// the backend through the api package and keeps the session store and local
// cache in step with what the backend answered.
package services
