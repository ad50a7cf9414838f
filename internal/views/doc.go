// Package views defines the view modules that render individual
// visualizations and the sources they are loaded from.
//
// A view module is not loaded when the application starts. The route table
// asks its Source to open a view the first time a navigation targets the
// view's slug, so startup cost does not grow with the size of the catalog.
package views
