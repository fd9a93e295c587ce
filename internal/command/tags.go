package command

import (
	"fmt"
	"strings"

	"github.com/pkordes/recruittrack/internal/domain"
)

const (
	WordAddTags  = "tag"
	UsageAddTags = WordAddTags + ": Adds one or more tags to the person identified by the index number " +
		"used in the displayed person list. Tags the person already has are reported, not re-added.\n" +
		"Parameters: INDEX (must be a positive integer) t/TAG [t/TAG]...\n" +
		"Example: " + WordAddTags + " 1 t/Java t/Spring"

	MessageAddTagsSuccess = "Added tags %s to %s"
	MessageDuplicateTags  = "%s already has tags %s"
	MessageNoTagsProvided = "At least one tag must be provided."
)

// AddTags adds Tags to the person at Index.
//
// Tags the person already carries are not an error: they are reported on a
// separate line. The store is touched at most once.
type AddTags struct {
	Index domain.Index
	Tags  domain.TagSet
}

func (c AddTags) Execute(m Model) (Result, error) {
	person, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if c.Tags.IsEmpty() {
		return Result{}, newError(NoTagsProvided, MessageNoTagsProvided)
	}

	added := c.Tags.Difference(person.Tags)
	duplicates := c.Tags.Intersect(person.Tags)

	var lines []string
	if !added.IsEmpty() {
		edited := person.WithTags(person.Tags.Union(added))
		if err := m.SetPerson(person, edited); err != nil {
			return Result{}, fromStoreError(err, MessageDuplicatePerson)
		}
		lines = append(lines, fmt.Sprintf(MessageAddTagsSuccess, added, person.Name))
	}
	if !duplicates.IsEmpty() {
		lines = append(lines, fmt.Sprintf(MessageDuplicateTags, person.Name, duplicates))
	}
	return Result{Message: strings.Join(lines, "\n")}, nil
}

func (c AddTags) String() string {
	return fmt.Sprintf("command.AddTags{index=%s, tagsToAdd=%s}", c.Index, c.Tags)
}

const (
	WordRemoveTags  = "untag"
	UsageRemoveTags = WordRemoveTags + ": Removes one or more tags from the person identified by the index number " +
		"used in the displayed person list. Every tag must be present on the person.\n" +
		"Parameters: INDEX (must be a positive integer) t/TAG [t/TAG]...\n" +
		"Example: " + WordRemoveTags + " 1 t/friends t/colleagues"

	MessageRemoveTagsSuccess = "Removed tags %s from %s"
	MessageTagsNotFound      = "%s does not have tags %s"
)

// RemoveTags removes every tag in Tags from the person at Index. It fails
// without changing anything if any of the tags is missing.
type RemoveTags struct {
	Index domain.Index
	Tags  domain.TagSet
}

func (c RemoveTags) Execute(m Model) (Result, error) {
	person, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if c.Tags.IsEmpty() {
		return Result{}, newError(NoTagsProvided, MessageNoTagsProvided)
	}
	if missing := c.Tags.Difference(person.Tags); !missing.IsEmpty() {
		return Result{}, newError(TagNotFound, fmt.Sprintf(MessageTagsNotFound, person.Name, missing))
	}

	edited := person.WithTags(person.Tags.Difference(c.Tags))
	if err := m.SetPerson(person, edited); err != nil {
		return Result{}, fromStoreError(err, MessageDuplicatePerson)
	}
	return Result{Message: fmt.Sprintf(MessageRemoveTagsSuccess, c.Tags, person.Name)}, nil
}

func (c RemoveTags) String() string {
	return fmt.Sprintf("command.RemoveTags{index=%s, tagsToRemove=%s}", c.Index, c.Tags)
}

const (
	WordRemoveTag  = "rmtag"
	UsageRemoveTag = WordRemoveTag + ": Removes a tag from the person identified by the index number " +
		"used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer) t/TAG\n" +
		"Example: " + WordRemoveTag + " 1 t/friends"

	MessageRemoveTagSuccess = "Removed tag %s from %s"
	MessageTagNotFound      = "%s does not have tag %s"
)

// RemoveTag removes a single tag from the person at Index.
type RemoveTag struct {
	Index domain.Index
	Tag   domain.Tag
}

func (c RemoveTag) Execute(m Model) (Result, error) {
	person, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if !person.Tags.Contains(c.Tag) {
		return Result{}, newError(TagNotFound, fmt.Sprintf(MessageTagNotFound, person.Name, c.Tag))
	}

	edited := person.WithTags(person.Tags.Difference(domain.NewTagSet(c.Tag)))
	if err := m.SetPerson(person, edited); err != nil {
		return Result{}, fromStoreError(err, MessageDuplicatePerson)
	}
	return Result{Message: fmt.Sprintf(MessageRemoveTagSuccess, c.Tag, person.Name)}, nil
}

func (c RemoveTag) String() string {
	return fmt.Sprintf("command.RemoveTag{index=%s, tag=%s}", c.Index, c.Tag)
}
