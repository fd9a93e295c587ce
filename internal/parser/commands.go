package parser

import (
	"strings"

	"github.com/pkordes/recruittrack/internal/command"
	"github.com/pkordes/recruittrack/internal/domain"
)

func parseAdd(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if strings.TrimSpace(m.Preamble()) != "" ||
		!m.Has(PrefixName) || !m.Has(PrefixPhone) || !m.Has(PrefixEmail) || !m.Has(PrefixAddress) {
		return nil, invalidFormat(command.UsageAdd, nil)
	}
	if err := m.VerifyNoDuplicatePrefixes(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, invalidFormat(command.UsageAdd, err)
	}

	var (
		p   domain.Person
		err error
	)
	name, _ := m.Value(PrefixName)
	if p.Name, err = ParseName(name); err != nil {
		return nil, invalidFormat(command.UsageAdd, err)
	}
	phone, _ := m.Value(PrefixPhone)
	if p.Phone, err = ParsePhone(phone); err != nil {
		return nil, invalidFormat(command.UsageAdd, err)
	}
	email, _ := m.Value(PrefixEmail)
	if p.Email, err = ParseEmail(email); err != nil {
		return nil, invalidFormat(command.UsageAdd, err)
	}
	address, _ := m.Value(PrefixAddress)
	if p.Address, err = ParseAddress(address); err != nil {
		return nil, invalidFormat(command.UsageAdd, err)
	}
	if p.Tags, err = ParseTags(m.Values(PrefixTag)); err != nil {
		return nil, invalidFormat(command.UsageAdd, err)
	}
	return command.Add{Person: p}, nil
}

func parseEdit(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(command.UsageEdit, err)
	}
	if err := m.VerifyNoDuplicatePrefixes(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, invalidFormat(command.UsageEdit, err)
	}

	var d command.EditDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := ParseName(v)
		if err != nil {
			return nil, invalidFormat(command.UsageEdit, err)
		}
		d.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(v)
		if err != nil {
			return nil, invalidFormat(command.UsageEdit, err)
		}
		d.Phone = &phone
	}
	if v, ok := m.Value(PrefixEmail); ok {
		email, err := ParseEmail(v)
		if err != nil {
			return nil, invalidFormat(command.UsageEdit, err)
		}
		d.Email = &email
	}
	if v, ok := m.Value(PrefixAddress); ok {
		address, err := ParseAddress(v)
		if err != nil {
			return nil, invalidFormat(command.UsageEdit, err)
		}
		d.Address = &address
	}
	if m.Has(PrefixTag) {
		tags, err := parseTagsForEdit(m.Values(PrefixTag))
		if err != nil {
			return nil, invalidFormat(command.UsageEdit, err)
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, &Error{Message: command.MessageNotEdited, Usage: command.UsageEdit}
	}
	return command.Edit{Index: idx, Descriptor: d}, nil
}

// parseTagsForEdit treats a single blank "t/" as "remove every tag".
func parseTagsForEdit(values []string) (domain.TagSet, error) {
	if len(values) == 1 && strings.TrimSpace(values[0]) == "" {
		return domain.NewTagSet(), nil
	}
	return ParseTags(values)
}

func parseDelete(args string) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.UsageDelete, err)
	}
	return command.Delete{Index: idx}, nil
}

func parseFind(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixTag)
	c := command.Find{
		NameKeywords:  append(strings.Fields(m.Preamble()), ParseKeywords(m.Values(PrefixName))...),
		PhoneKeywords: ParseKeywords(m.Values(PrefixPhone)),
		TagKeywords:   ParseKeywords(m.Values(PrefixTag)),
	}
	if len(c.NameKeywords) == 0 && len(c.PhoneKeywords) == 0 && len(c.TagKeywords) == 0 {
		return nil, invalidFormat(command.UsageFind, nil)
	}
	return c, nil
}

func parseAddTags(args string) (command.Command, error) {
	idx, tags, err := parseIndexAndTags(args)
	if err != nil {
		return nil, invalidFormat(command.UsageAddTags, err)
	}
	return command.AddTags{Index: idx, Tags: tags}, nil
}

func parseRemoveTags(args string) (command.Command, error) {
	idx, tags, err := parseIndexAndTags(args)
	if err != nil {
		return nil, invalidFormat(command.UsageRemoveTags, err)
	}
	return command.RemoveTags{Index: idx, Tags: tags}, nil
}

// parseIndexAndTags reads "INDEX t/TAG...". Zero tags is not a parse error;
// the command decides what an empty set means.
func parseIndexAndTags(args string) (domain.Index, domain.TagSet, error) {
	m := Tokenize(args, PrefixTag)
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return domain.Index{}, domain.TagSet{}, err
	}
	tags, err := ParseTags(m.Values(PrefixTag))
	if err != nil {
		return domain.Index{}, domain.TagSet{}, err
	}
	return idx, tags, nil
}

func parseRemoveTag(args string) (command.Command, error) {
	m := Tokenize(args, PrefixTag)
	value, ok := m.Value(PrefixTag)
	if !ok {
		return nil, invalidFormat(command.UsageRemoveTag, nil)
	}
	if err := m.VerifyNoDuplicatePrefixes(PrefixTag); err != nil {
		return nil, invalidFormat(command.UsageRemoveTag, err)
	}
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(command.UsageRemoveTag, err)
	}
	tag, err := ParseTag(value)
	if err != nil {
		return nil, invalidFormat(command.UsageRemoveTag, err)
	}
	return command.RemoveTag{Index: idx, Tag: tag}, nil
}
