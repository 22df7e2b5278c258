package graph

import (
	"bytes"
	"encoding/json"
	"html/template"
)

// Standalone document for the persisted artifact; the interactive page embeds
// the same dataset directly instead of reloading this file.
const standaloneHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Equipment Graph</title>
<script src="https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"></script>
<style>
  html, body { margin: 0; height: 100%; }
  #graph { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="graph"></div>
<script>
  var data = {{.}};
  var network = new vis.Network(document.getElementById("graph"), {
    nodes: new vis.DataSet(data.nodes),
    edges: new vis.DataSet(data.edges)
  }, {
    physics: { enabled: data.physics },
    edges: { arrows: { to: { enabled: false } } }
  });
</script>
</body>
</html>
`

var standaloneTmpl = template.Must(template.New("graph").Parse(standaloneHTML))

// RenderHTML produces a self-contained interactive document for the network,
// entirely in memory.
func RenderHTML(net *Network) (string, error) {
	data, err := json.Marshal(net)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := standaloneTmpl.Execute(&buf, template.JS(data)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
