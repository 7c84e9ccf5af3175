/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package layout compiles a prompt and button specification into an abstract
// widget tree. The tree is pure data: internal/ui renders it with concrete
// Fyne containers, which keeps every layout decision testable without a
// windowing toolkit.
package layout

import (
	"strings"

	"modalkit/internal/spec"
)

// Kind discriminates the node types of the abstract tree.
type Kind int

const (
	NodeRoot Kind = iota
	NodeImage
	NodeMessage
	NodeTabs
	NodeTabPage
	NodeGroup
	NodeCollapsible
	NodeStack
	NodeSeparator
	NodePrompt
	NodeComment
	NodeCountdown
	NodeButtonRow
	NodeButton
)

// Node is one branch or leaf of the abstract widget tree. PromptIndex and
// ButtonIndex address the normalized prompt list and the effective button
// list respectively.
type Node struct {
	Kind        Kind
	Title       string
	HideHeader  bool
	PromptIndex int
	ButtonIndex int
	Children    []*Node
}

func (n *Node) add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Options carries the dialog-level inputs of the compiler that do not live on
// individual prompts.
type Options struct {
	HasImage          bool
	MessageCount      int
	CommentCount      int
	Countdown         bool
	CollapsibleGroups bool
	ButtonRows        int
	ButtonCount       int
	UntitledTab       string // title for clusters without a tab key when tabs exist
}

// cluster is the set of prompts sharing one (tab, group) key pair, in
// first-seen order.
type cluster struct {
	tab, group string
	prompts    []int
}

// Build compiles the tree: optional image, optional messages, one container
// per (tab, group) cluster in first-occurrence order, comments, countdown
// placeholder, then the button rows.
func Build(prompts []spec.Prompt, opts Options) *Node {
	root := &Node{Kind: NodeRoot}
	if opts.HasImage {
		root.add(&Node{Kind: NodeImage})
	}
	if opts.MessageCount > 0 {
		root.add(&Node{Kind: NodeMessage})
	}

	clusters, hasTabs := clusterPrompts(prompts)
	if hasTabs {
		tabs := root.add(&Node{Kind: NodeTabs})
		pages := map[string]*Node{}
		for _, c := range clusters {
			title := c.tab
			if title == "" {
				title = opts.UntitledTab
			}
			page, ok := pages[title]
			if !ok {
				page = tabs.add(&Node{Kind: NodeTabPage, Title: title})
				pages[title] = page
			}
			page.add(clusterNode(c, prompts, opts))
		}
	} else {
		for _, c := range clusters {
			root.add(clusterNode(c, prompts, opts))
		}
	}

	if opts.CommentCount > 0 {
		root.add(&Node{Kind: NodeComment})
	}
	if opts.Countdown {
		root.add(&Node{Kind: NodeCountdown})
	}

	appendButtonRows(root, opts)
	return root
}

// clusterPrompts groups prompt indices by their (tab, group) pair using
// stable first-occurrence ordering. Cluster order must match input order, so
// no sorting container is involved.
func clusterPrompts(prompts []spec.Prompt) ([]cluster, bool) {
	type key struct{ tab, group string }
	var order []cluster
	index := map[key]int{}
	hasTabs := false
	for i := range prompts {
		p := &prompts[i]
		if p.Tab != "" {
			hasTabs = true
		}
		k := key{p.Tab, p.Group}
		at, ok := index[k]
		if !ok {
			at = len(order)
			index[k] = at
			order = append(order, cluster{tab: p.Tab, group: p.Group})
		}
		order[at].prompts = append(order[at].prompts, i)
	}
	return order, hasTabs
}

// clusterNode renders one cluster: a titled group box (collapsible when the
// dialog requests it), or a plain stack when the cluster has no group key.
func clusterNode(c cluster, prompts []spec.Prompt, opts Options) *Node {
	body := &Node{Kind: NodeStack}
	for _, i := range c.prompts {
		p := &prompts[i]
		if p.ShowSeparator {
			body.add(&Node{Kind: NodeSeparator})
		}
		item := &Node{Kind: NodePrompt, PromptIndex: i}
		if p.Collapsible {
			wrap := &Node{Kind: NodeCollapsible, Title: p.Message}
			wrap.add(item)
			body.add(wrap)
			continue
		}
		body.add(item)
	}
	if c.group == "" {
		return body
	}
	kind := NodeGroup
	if opts.CollapsibleGroups {
		kind = NodeCollapsible
	}
	g := &Node{Kind: kind, Title: c.group, HideHeader: headerSuppressed(c.group)}
	g.add(body)
	return g
}

// headerSuppressed reports whether the group key carries no alphabetic rune,
// which keeps the bordered container but hides the visible header.
func headerSuppressed(group string) bool {
	return !strings.ContainsFunc(group, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// appendButtonRows distributes the buttons left to right over the configured
// row count, ceil(total/rows) per row; the last row may run short.
func appendButtonRows(root *Node, opts Options) {
	total := opts.ButtonCount
	if total == 0 {
		return
	}
	rows := opts.ButtonRows
	if rows < 1 {
		rows = 1
	}
	if rows > total {
		rows = total
	}
	perRow := (total + rows - 1) / rows
	for start := 0; start < total; start += perRow {
		row := root.add(&Node{Kind: NodeButtonRow})
		for i := start; i < start+perRow && i < total; i++ {
			row.add(&Node{Kind: NodeButton, ButtonIndex: i})
		}
	}
}
