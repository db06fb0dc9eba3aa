// Package layoutexport renders a layout.Result as Graphviz DOT, grounded
// on the node-link DOT exporter of the retrieval pack's rendering helper
// (pkg/render/nodelink): absolute node positions are emitted as pinned
// "pos" attributes and bend points become polyline "pos" edge attributes,
// so the solved geometry — not Graphviz's own layout engine — drives the
// picture. This package sits entirely outside the core pipeline; it is
// the one concrete renderer the module ships against the declared
// external "renderer" collaborator interface.
package layoutexport
