package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/service"
)

// MessageNoPersons is shown instead of an empty table.
const MessageNoPersons = "No persons to show."

// renderer writes pterm output to w instead of stdout.
type renderer struct {
	w io.Writer
}

func (r *renderer) response(resp service.Response) {
	switch {
	case resp.ShowHelp:
		fmt.Fprintln(r.w, resp.Message)
	case resp.Exit:
		fmt.Fprint(r.w, pterm.Info.Sprintln(resp.Message))
	default:
		fmt.Fprint(r.w, pterm.Success.Sprintln(resp.Message))
		r.view(resp.View)
	}
}

func (r *renderer) err(err error) {
	for _, l := range errorLines(err) {
		switch l.kind {
		case lineError:
			fmt.Fprint(r.w, pterm.Error.Sprintln(l.text))
		case lineCause:
			fmt.Fprint(r.w, pterm.Warning.Sprintln(l.text))
		default:
			fmt.Fprintln(r.w, l.text)
		}
	}
}

// view renders persons as a table numbered the way commands index them.
func (r *renderer) view(persons []domain.Person) {
	if len(persons) == 0 {
		fmt.Fprint(r.w, pterm.Info.Sprintln(MessageNoPersons))
		return
	}

	data := pterm.TableData{{"#", "Name", "Phone", "Email", "Address", "Tags"}}
	for i, p := range persons {
		data = append(data, []string{
			strconv.Itoa(domain.IndexFromZeroBased(i).OneBased()),
			p.Name.String(),
			p.Phone.String(),
			p.Email.String(),
			p.Address.String(),
			strings.Join(p.Tags.Names(), ", "),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		fmt.Fprint(r.w, pterm.Error.Sprintln(err.Error()))
		return
	}
	fmt.Fprintln(r.w, table)
}
