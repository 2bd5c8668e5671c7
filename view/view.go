package view

import (
	"fmt"
	"strconv"

	. "git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	colorType  = tcell.ColorDodgerBlue
	colorField = tcell.ColorSilver
	colorValue = tcell.ColorGreen
	colorRoot  = tcell.ColorYellow
)

const helpText = "[yellow]Enter[-] fold/unfold  [yellow]e[-] expand all  [yellow]c[-] collapse all  [yellow]q[-]/[yellow]Esc[-] quit"

// Build turns prog into a tview tree. Node tree items carry the syntax node
// as their reference, field leaves carry nothing.
func Build(prog *Program, title string) *tview.TreeNode {
	root := tview.NewTreeNode(title).SetColor(colorRoot)
	if prog == nil {
		return root
	}
	for _, stat := range prog.Stats {
		root.AddChild(buildNode(stat))
	}
	return root
}

func buildNode(n Node) *tview.TreeNode {
	item := tview.NewTreeNode(label(n)).
		SetReference(n).
		SetColor(colorType)

	switch n := n.(type) {
	case *MultipleDeclaration:
		for _, d := range n.Declarations {
			if d.Value == nil {
				item.AddChild(leaf(d.Name))
			} else {
				item.AddChild(leaf(d.Name + " = " + strconv.FormatFloat(*d.Value, 'g', -1, 64)))
			}
		}
	case *Output:
		item.AddChild(field("value_kind", n.Value.Kind.String()))
	case *Return:
		item.AddChild(field("value_kind", n.Value.Kind.String()))
	case *FunctionDeclaration:
		params := tview.NewTreeNode("parameters").SetColor(colorField)
		for _, p := range n.Parameters {
			params.AddChild(leaf(p.Type + " " + p.Name))
		}
		item.AddChild(params)
		body := tview.NewTreeNode("body").SetColor(colorField)
		for _, stat := range n.Body {
			body.AddChild(buildNode(stat))
		}
		item.AddChild(body)
	case *ClassDeclaration:
		for _, section := range n.Body {
			item.AddChild(buildNode(section))
		}
	case *AccessSection:
		for _, m := range n.Members {
			item.AddChild(buildNode(m))
		}
	}
	return item
}

// label is the one-line summary shown for a node.
func label(n Node) string {
	switch n := n.(type) {
	case *MultipleDeclaration:
		return fmt.Sprintf("%s %s (line %d)", n.Type(), n.VarType, n.Line)
	case *Output:
		return fmt.Sprintf("%s %s (line %d)", n.Type(), n.Value, n.Line)
	case *Input:
		return fmt.Sprintf("%s %s (line %d)", n.Type(), n.Variable, n.Line)
	case *FunctionDeclaration:
		return fmt.Sprintf("%s %s %s() (line %d)", n.Type(), n.ReturnType, n.Name, n.Line)
	case *Return:
		return fmt.Sprintf("%s %s (line %d)", n.Type(), n.Value, n.Line)
	case *ClassDeclaration:
		return fmt.Sprintf("%s %s (line %d)", n.Type(), n.Name, n.Line)
	case *AccessSection:
		return fmt.Sprintf("%s %s", n.Type(), n.Access)
	}
	return n.Type()
}

func leaf(text string) *tview.TreeNode {
	return tview.NewTreeNode(text).SetColor(colorValue).SetSelectable(false)
}

func field(key, value string) *tview.TreeNode {
	return leaf(key + ": " + value)
}

// setExpanded folds or unfolds every node below n.
func setExpanded(n *tview.TreeNode, expanded bool) {
	n.Walk(func(node, parent *tview.TreeNode) bool {
		if parent != nil {
			node.SetExpanded(expanded)
		}
		return true
	})
}

// Show opens a full-screen tree browser for prog and blocks until the user
// quits.
func Show(prog *Program, title string) error {
	root := Build(prog, title)
	tree := tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root).
		SetGraphicsColor(colorField)
	tree.SetBorder(true).SetTitle(" " + title + " ")

	detail := tview.NewTextView().SetDynamicColors(true)
	detail.SetBorder(true).SetTitle(" node ")
	help := tview.NewTextView().SetDynamicColors(true).SetText(helpText)

	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		node.SetExpanded(!node.IsExpanded())
	})
	tree.SetChangedFunc(func(node *tview.TreeNode) {
		n, ok := node.GetReference().(Node)
		if !ok {
			detail.SetText("")
			return
		}
		data, err := Json.MarshalIndent(n, "", "  ")
		if err != nil {
			detail.SetText("[red]" + err.Error())
			return
		}
		detail.SetText(tview.Escape(string(data)))
	})

	body := tview.NewFlex().
		AddItem(tree, 0, 2, true).
		AddItem(detail, 0, 1, false)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(help, 1, 0, false)

	app := tview.NewApplication()
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Rune() == 'e':
			setExpanded(root, true)
			return nil
		case event.Rune() == 'c':
			setExpanded(root, false)
			return nil
		}
		return event
	})
	return app.SetRoot(layout, true).Run()
}
