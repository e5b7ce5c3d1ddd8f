package regionio

import (
	"encoding/json"

	"github.com/rectgraph/slig/rig"
)

const (
	shapeNodeLink  = "node_link"
	shapeAdjacency = "adjacency"
)

// rigEnvelope is the outer wire form of a rig.Graph (spec.md §6.3): the
// id/dimension/shape selector, with the actual graph body deferred to a
// shape-specific payload decoded on demand.
type rigEnvelope struct {
	ID        string          `json:"id"`
	Dimension int             `json:"dimension"`
	JSONGraph string          `json:"json_graph"`
	Graph     json.RawMessage `json:"graph"`
}

type nodeLinkNode struct {
	ID     string     `json:"id"`
	Region regionWire `json:"region"`
}

type nodeLinkEdge struct {
	Source string     `json:"source"`
	Target string     `json:"target"`
	Region regionWire `json:"region"`
}

type nodeLinkGraph struct {
	Directed   bool                   `json:"directed"`
	Multigraph bool                   `json:"multigraph"`
	Graph      map[string]interface{} `json:"graph"`
	Nodes      []nodeLinkNode         `json:"nodes"`
	Links      []nodeLinkEdge         `json:"links"`
}

// adjacencyEdge is one entry in an adjacency list: the neighbor id and
// the pairwise intersection Region.
type adjacencyEdge struct {
	ID     string     `json:"id"`
	Region regionWire `json:"region"`
}

type adjacencyGraph struct {
	Nodes     []nodeLinkNode             `json:"nodes"`
	Adjacency map[string][]adjacencyEdge `json:"adjacency"`
}

// MarshalRIG encodes g using the given shape ("node_link" or
// "adjacency", per spec.md §6.3). Both shapes carry the same information;
// node_link lists edges once (canonical A<B order), adjacency lists each
// edge from both endpoints.
func MarshalRIG(g *rig.Graph, shape string) ([]byte, error) {
	var body interface{}
	switch shape {
	case shapeNodeLink:
		body = marshalNodeLink(g)
	case shapeAdjacency:
		body = marshalAdjacency(g)
	default:
		return nil, ErrUnknownGraphShape
	}
	rawBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	env := rigEnvelope{ID: g.ID, Dimension: g.Dimension, JSONGraph: shape, Graph: rawBody}
	return json.Marshal(env)
}

func marshalNodeLink(g *rig.Graph) nodeLinkGraph {
	regions := g.Regions()
	nodes := make([]nodeLinkNode, len(regions))
	for i, r := range regions {
		nodes[i] = nodeLinkNode{ID: r.ID, Region: toWire(r)}
	}

	ids := make([]string, len(regions))
	for i, r := range regions {
		ids[i] = r.ID
	}
	var links []nodeLinkEdge
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if inter, ok := g.Intersection(ids[i], ids[j]); ok {
				links = append(links, nodeLinkEdge{Source: ids[i], Target: ids[j], Region: toWire(inter)})
			}
		}
	}
	return nodeLinkGraph{Directed: false, Multigraph: false, Graph: map[string]interface{}{}, Nodes: nodes, Links: links}
}

func marshalAdjacency(g *rig.Graph) adjacencyGraph {
	regions := g.Regions()
	nodes := make([]nodeLinkNode, len(regions))
	adjacency := make(map[string][]adjacencyEdge, len(regions))
	for i, r := range regions {
		nodes[i] = nodeLinkNode{ID: r.ID, Region: toWire(r)}
		nbrs, _ := g.Neighbors(r.ID)
		edges := make([]adjacencyEdge, len(nbrs))
		for j, nbr := range nbrs {
			inter, _ := g.Intersection(r.ID, nbr)
			edges[j] = adjacencyEdge{ID: nbr, Region: toWire(inter)}
		}
		adjacency[r.ID] = edges
	}
	return adjacencyGraph{Nodes: nodes, Adjacency: adjacency}
}

// UnmarshalRIG decodes data into a Graph, dispatching on the envelope's
// json_graph field. Returns ErrUnknownGraphShape for any other value.
func UnmarshalRIG(data []byte) (*rig.Graph, error) {
	var env rigEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	g, err := rig.New(env.ID, env.Dimension)
	if err != nil {
		return nil, err
	}

	switch env.JSONGraph {
	case shapeNodeLink:
		var body nodeLinkGraph
		if err := json.Unmarshal(env.Graph, &body); err != nil {
			return nil, err
		}
		return populateFromNodeLink(g, body)
	case shapeAdjacency:
		var body adjacencyGraph
		if err := json.Unmarshal(env.Graph, &body); err != nil {
			return nil, err
		}
		return populateFromAdjacency(g, body)
	default:
		return nil, ErrUnknownGraphShape
	}
}

func populateFromNodeLink(g *rig.Graph, body nodeLinkGraph) (*rig.Graph, error) {
	for _, n := range body.Nodes {
		r, err := n.Region.toRegion()
		if err != nil {
			return nil, err
		}
		g.PutRegion(r)
	}
	for _, e := range body.Links {
		inter, err := e.Region.toRegion()
		if err != nil {
			return nil, err
		}
		if err := g.PutPrecomputedIntersection(e.Source, e.Target, inter); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func populateFromAdjacency(g *rig.Graph, body adjacencyGraph) (*rig.Graph, error) {
	for _, n := range body.Nodes {
		r, err := n.Region.toRegion()
		if err != nil {
			return nil, err
		}
		g.PutRegion(r)
	}
	seen := make(map[[2]string]bool)
	for src, edges := range body.Adjacency {
		for _, e := range edges {
			key := [2]string{src, e.ID}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			inter, err := e.Region.toRegion()
			if err != nil {
				return nil, err
			}
			if err := g.PutPrecomputedIntersection(src, e.ID, inter); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
