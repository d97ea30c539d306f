package render

import (
	"fmt"
	"io"

	"github.com/nerdlist/nerdlist/script"
	asciitree "github.com/thediveo/go-asciitree"
)

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

func reportTree(report *script.Report) treeNode {
	steps := treeNode{Label: "steps"}
	for _, step := range report.Steps {
		node := treeNode{Label: fmt.Sprintf("%d: %s", step.Line, stepCommand(step))}
		switch {
		case !step.OK:
			node.Props = append(node.Props, "error: "+step.Error)
		case step.Value != "":
			node.Props = append(node.Props, "value: "+step.Value)
		}
		node.Props = append(node.Props, fmt.Sprintf("len: %d", step.Len), fmt.Sprintf("cap: %d", step.Cap))
		if step.Grew {
			node.Props = append(node.Props, "grew")
		}
		steps.Children = append(steps.Children, node)
	}

	buffer := treeNode{Label: "buffer"}
	for i, value := range report.Final {
		buffer.Children = append(buffer.Children, treeNode{Label: fmt.Sprintf("[%d] %s", i, value)})
	}
	// one node for all spare slots
	if len(report.Final) < report.Cap {
		buffer.Children = append(buffer.Children, treeNode{Label: fmt.Sprintf("[%d..%d) spare", len(report.Final), report.Cap)})
	}

	return treeNode{
		Label: report.Kind + " list",
		Props: []string{
			fmt.Sprintf("initial capacity: %d", report.InitialCapacity),
			fmt.Sprintf("len: %d", report.Len),
			fmt.Sprintf("cap: %d", report.Cap),
			fmt.Sprintf("failures: %d", report.Failures),
		},
		Children: []treeNode{steps, buffer},
	}
}

func writeTree(w io.Writer, report *script.Report) error {
	_, err := fmt.Fprintln(w, asciitree.RenderFancy(reportTree(report)))
	return err
}
