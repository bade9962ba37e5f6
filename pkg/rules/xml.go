package rules

import (
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/beevik/etree"
)

// Element names of the SetupConfig layout
const (
	xmlRoot        = "SetupConfig"
	xmlSource      = "OriginFolderPath"
	xmlPlatforms   = "Platforms"
	xmlPlatform    = "Platform"
	xmlName        = "Name"
	xmlRules       = "MirrorRules"
	xmlRule        = "MirrorRule"
	xmlOrigin      = "Origin"
	xmlDestination = "Destination"
)

func parseXML(data []byte) (*RuleSet, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesParse, "failed to parse XML rules")
	}

	root := doc.SelectElement(xmlRoot)
	if root == nil {
		return nil, errors.Newf(errors.ErrRulesParse, "missing <%s> root element", xmlRoot)
	}

	rs := &RuleSet{SourceRoot: childText(root, xmlSource)}

	platforms := root.SelectElement(xmlPlatforms)
	if platforms == nil {
		return rs, nil
	}

	for _, pe := range platforms.SelectElements(xmlPlatform) {
		p := Platform{Name: childText(pe, xmlName)}
		if rulesEl := pe.SelectElement(xmlRules); rulesEl != nil {
			for _, re := range rulesEl.SelectElements(xmlRule) {
				p.Rules = append(p.Rules, types.MappingRule{
					Origin:      childText(re, xmlOrigin),
					Destination: childText(re, xmlDestination),
				})
			}
		}
		rs.Platforms = append(rs.Platforms, p)
	}

	return rs, nil
}

func marshalXML(rs *RuleSet) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement(xmlRoot)
	root.CreateElement(xmlSource).SetText(rs.SourceRoot)

	platforms := root.CreateElement(xmlPlatforms)
	for _, p := range rs.Platforms {
		pe := platforms.CreateElement(xmlPlatform)
		pe.CreateElement(xmlName).SetText(p.Name)
		rulesEl := pe.CreateElement(xmlRules)
		for _, r := range p.Rules {
			re := rulesEl.CreateElement(xmlRule)
			re.CreateElement(xmlOrigin).SetText(r.Origin)
			re.CreateElement(xmlDestination).SetText(r.Destination)
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode XML rules")
	}
	return data, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
