package command

import (
	"fmt"
	"strings"

	"github.com/pkordes/recruittrack/internal/domain"
)

const (
	WordAdd  = "add"
	UsageAdd = WordAdd + ": Adds a person to the contact list.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + WordAdd + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 " +
		"t/friends t/owesMoney"

	MessageAddSuccess = "New person added: %s"
)

// Add inserts a new person.
type Add struct {
	Person domain.Person
}

func (c Add) Execute(m Model) (Result, error) {
	if m.Contains(c.Person) {
		return Result{}, newError(DuplicateRecord, MessageDuplicatePerson)
	}
	if err := m.Add(c.Person); err != nil {
		return Result{}, fromStoreError(err, MessageDuplicatePerson)
	}
	return Result{Message: fmt.Sprintf(MessageAddSuccess, c.Person)}, nil
}

func (c Add) String() string { return fmt.Sprintf("command.Add{toAdd=%s}", c.Person) }

const (
	WordEdit  = "edit"
	UsageEdit = WordEdit + ": Edits the details of the person identified by the index number used in the " +
		"displayed person list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + WordEdit + " 1 p/91234567 e/johndoe@example.com"

	MessageEditSuccess   = "Edited Person: %s"
	MessageNotEdited     = "At least one field to edit must be provided."
	MessageDuplicateEdit = "This edit would make the person a duplicate of another contact"
)

// EditDescriptor holds the fields to change. Nil fields are left as they are;
// a non-nil empty Tags clears every tag.
type EditDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	Tags    *domain.TagSet
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// Apply returns p with the descriptor's fields applied.
func (d EditDescriptor) Apply(p domain.Person) domain.Person {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Phone != nil {
		p.Phone = *d.Phone
	}
	if d.Email != nil {
		p.Email = *d.Email
	}
	if d.Address != nil {
		p.Address = *d.Address
	}
	if d.Tags != nil {
		p.Tags = *d.Tags
	}
	return p
}

// Edit replaces the person at Index with an edited copy.
type Edit struct {
	Index      domain.Index
	Descriptor EditDescriptor
}

func (c Edit) Execute(m Model) (Result, error) {
	person, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.Apply(person)
	if err := m.SetPerson(person, edited); err != nil {
		return Result{}, fromStoreError(err, MessageDuplicateEdit)
	}
	return Result{Message: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}

func (c Edit) String() string { return fmt.Sprintf("command.Edit{index=%s}", c.Index) }

const (
	WordDelete  = "delete"
	UsageDelete = WordDelete + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDelete + " 1"

	MessageDeleteSuccess = "Deleted Person: %s"
)

// Delete removes the person at Index.
type Delete struct {
	Index domain.Index
}

func (c Delete) Execute(m Model) (Result, error) {
	person, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.Remove(person); err != nil {
		return Result{}, fromStoreError(err, MessageDuplicatePerson)
	}
	return Result{Message: fmt.Sprintf(MessageDeleteSuccess, person)}, nil
}

func (c Delete) String() string { return fmt.Sprintf("command.Delete{index=%s}", c.Index) }

const (
	WordFind  = "find"
	UsageFind = WordFind + ": Finds all persons matching every given field. Names match whole words and tags " +
		"match exactly, both ignoring case; phone numbers match any part of the number.\n" +
		"Parameters: [n/NAME_KEYWORDS] [p/PHONE_KEYWORDS] [t/TAG_KEYWORDS] (at least one)\n" +
		"Example: " + WordFind + " n/alice bob t/friends"

	MessagePersonsListed = "%d persons listed!"
)

// Find filters the displayed list. Within a field any keyword may match;
// every non-empty field must match.
type Find struct {
	NameKeywords  []string
	PhoneKeywords []string
	TagKeywords   []string
}

// Predicate builds the filter described by c.
func (c Find) Predicate() domain.Predicate {
	var preds []domain.Predicate
	if len(c.NameKeywords) > 0 {
		preds = append(preds, domain.NameContainsKeywords(c.NameKeywords))
	}
	if len(c.PhoneKeywords) > 0 {
		preds = append(preds, domain.PhoneContainsKeywords(c.PhoneKeywords))
	}
	if len(c.TagKeywords) > 0 {
		preds = append(preds, domain.TagContainsKeywords(c.TagKeywords))
	}
	return domain.All(preds...)
}

func (c Find) Execute(m Model) (Result, error) {
	m.SetFilter(c.Predicate())
	return Result{Message: fmt.Sprintf(MessagePersonsListed, len(m.View()))}, nil
}

func (c Find) String() string {
	return fmt.Sprintf("command.Find{names=[%s], phones=[%s], tags=[%s]}",
		strings.Join(c.NameKeywords, ", "), strings.Join(c.PhoneKeywords, ", "), strings.Join(c.TagKeywords, ", "))
}
