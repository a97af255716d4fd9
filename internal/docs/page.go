package docs

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// FragmentPath serves the filtered topic table the page swaps in.
const FragmentPath = "/catalog/fragment/topics"

// Page renders the full catalog document.
func Page(reg *topicmgr.Registry, examples []Example) g.Node {
	stats := reg.Stats()
	return c.HTML5(c.HTML5Props{
		Title:    "WebSocket catalog",
		Language: "en",
		Head: []g.Node{
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
		},
		Body: []g.Node{
			h.Main(
				h.H1(g.Text("WebSocket catalog")),
				h.P(g.Textf("%d topics, %d commands, %d entities, %d analytics streams.",
					stats.Topics, stats.Commands, stats.Entities, stats.AnalyticsPairs)),

				h.H2(g.Text("Topics")),
				h.Input(
					h.Type("search"),
					h.Name("q"),
					h.Placeholder("Filter topics"),
					hx.Get(FragmentPath),
					hx.Trigger("input changed delay:200ms, search"),
					hx.Target("#topics"),
				),
				h.Div(h.ID("topics"), TopicTable(reg, "")),

				h.H2(g.Text("Commands")),
				commandTable(reg),

				h.H2(g.Text("Examples")),
				h.Div(g.Map(examples, exampleCard)),
			),
		},
	})
}

// TopicTable lists topics grouped by their top-level key. A non-empty filter
// keeps topics containing it, ignoring case.
func TopicTable(reg *topicmgr.Registry, filter string) g.Node {
	filter = strings.ToLower(strings.TrimSpace(filter))

	var rows []g.Node
	for _, group := range reg.Groups() {
		for _, topic := range reg.GroupTopics(group) {
			if filter != "" && !strings.Contains(topic, filter) {
				continue
			}
			rows = append(rows, h.Tr(
				h.Td(g.Text(group)),
				h.Td(h.Code(g.Text(topic))),
			))
		}
	}
	if len(rows) == 0 {
		return h.P(g.Textf("No topic matches %q.", filter))
	}
	return h.Table(
		h.THead(h.Tr(h.Th(g.Text("Group")), h.Th(g.Text("Topic")))),
		h.TBody(rows...),
	)
}

func commandTable(reg *topicmgr.Registry) g.Node {
	return h.Table(
		h.THead(h.Tr(h.Th(g.Text("Wire action")), h.Th(g.Text("Command")))),
		h.TBody(g.Map(reg.Actions(), func(action string) g.Node {
			command, _ := reg.ResolveAction(action)
			return h.Tr(h.Td(h.Code(g.Text(action))), h.Td(h.Code(g.Text(command))))
		})),
	)
}

func exampleCard(ex Example) g.Node {
	return h.Details(
		h.Summary(g.Text(fmt.Sprintf("%s (%s)", ex.Name, ex.Group))),
		h.P(g.Text(ex.Description)),
		h.Pre(h.Code(g.Text(ex.URL))),
		h.P(g.Text("Send "), h.Code(g.Text(ex.Action)), g.Text(", expect "), h.Code(g.Text(strings.Join(ex.Expects, ", ")))),
	)
}
