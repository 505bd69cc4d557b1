package iso19115

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/samber/lo"

	"github.com/antarctica/mdlib/internal/checksum"
	"github.com/antarctica/mdlib/pkg/element"
)

const roleDistributor = "distributor"

// OptionID returns the content hash linking the format and transfer option
// of a distribution option. It is independent of key order and of how
// numbers are written.
func OptionID(opt DistributionOption) (string, error) {
	return checksum.New().Sum(opt)
}

// splitContacts separates distributor roles from all others.
func splitContacts(contacts []Contact) (points, distributors []Contact) {
	for _, c := range ExpandRoles(contacts) {
		if c.Role[0] == roleDistributor {
			distributors = append(distributors, c)
			continue
		}
		points = append(points, c)
	}
	return points, distributors
}

// distribution writes gmd:distributionInfo when the record has distribution
// options or distributor contacts.
func (e *encoder) distribution(root *etree.Element, cfg *Config) {
	_, distributors := splitContacts(cfg.Identification.Contacts)
	if len(cfg.Distribution) == 0 && len(distributors) == 0 {
		return
	}
	dist := e.Path(root, "gmd:distributionInfo", "gmd:MD_Distribution")

	ids := make([]string, len(cfg.Distribution))
	for i, opt := range cfg.Distribution {
		id, err := OptionID(opt)
		if err != nil {
			e.fail(err)
			return
		}
		ids[i] = distributionIDPrefix + id
	}

	for i, opt := range cfg.Distribution {
		if opt.Format != nil {
			e.format(dist, ids[i]+formatIDSuffix, *opt.Format)
		}
	}
	for _, c := range distributors {
		e.responsibleParty(e.Path(dist, "gmd:distributor", "gmd:MD_Distributor", "gmd:distributorContact"), c)
	}
	for i, opt := range cfg.Distribution {
		if opt.TransferOption != nil {
			e.transferOption(dist, ids[i]+transferIDSuffix, *opt.TransferOption)
		}
	}
}

func (e *encoder) format(dist *etree.Element, id string, f Format) {
	mdf := e.Path(dist, "gmd:distributionFormat", "gmd:MD_Format")
	mdf.CreateAttr("id", id)
	e.EncodeAnchor(mdf, "gmd:name", element.Anchor{Value: f.Format, Href: f.Href})
	if f.Version != "" {
		e.CharacterString(mdf, "gmd:version", f.Version)
	} else {
		e.Child(mdf, "gmd:version").CreateAttr("gco:nilReason", "missing")
	}
}

func (e *encoder) transferOption(dist *etree.Element, id string, t TransferOption) {
	dto := e.Path(dist, "gmd:transferOptions", "gmd:MD_DigitalTransferOptions")
	dto.CreateAttr("id", id)
	if t.Size != nil {
		e.CharacterString(dto, "gmd:unitsOfDistribution", t.Size.Unit)
		e.Real(dto, "gmd:transferSize", t.Size.Magnitude)
	}
	e.onlineResource(dto, "gmd:onLine", t.OnlineResource)
}

type decodedFormat struct {
	value Format
	hash  string
	pair  int // index of the paired transfer option, -1 when partial
}

type decodedTransfer struct {
	value  TransferOption
	hash   string
	paired bool
	done   bool
}

// distribution reads distribution options and distributor contacts.
//
// Formats and transfer options are re-associated by their id hashes.
// Items without a recognisable id are paired by position; anything left
// over becomes a partial option. Options are returned in an order
// consistent with both XML sequences; where a partial format and a partial
// transfer option could go either way the format comes first.
func (d *decoder) distribution(root *etree.Element) ([]DistributionOption, []Contact) {
	dist := element.Find(root, "gmd:distributionInfo/gmd:MD_Distribution")
	if dist == nil {
		return nil, nil
	}

	distributors := d.contacts(dist, "gmd:distributor/gmd:MD_Distributor/gmd:distributorContact")

	formats := lo.Map(element.FindAll(dist, "gmd:distributionFormat/gmd:MD_Format"), func(el *etree.Element, _ int) *decodedFormat {
		return &decodedFormat{value: d.format(el), hash: optionHash(el, formatIDSuffix), pair: -1}
	})
	transfers := lo.Map(element.FindAll(dist, "gmd:transferOptions/gmd:MD_DigitalTransferOptions"), func(el *etree.Element, _ int) *decodedTransfer {
		return &decodedTransfer{value: d.transferOption(el), hash: optionHash(el, transferIDSuffix)}
	})

	pairOptions(formats, transfers)
	return mergeOptions(formats, transfers), distributors
}

func pairOptions(formats []*decodedFormat, transfers []*decodedTransfer) {
	for _, f := range formats {
		if f.hash == "" {
			continue
		}
		_, j, ok := lo.FindIndexOf(transfers, func(t *decodedTransfer) bool {
			return !t.paired && t.hash == f.hash
		})
		if ok {
			f.pair = j
			transfers[j].paired = true
		}
	}

	var looseTransfers []int
	for j, t := range transfers {
		if !t.paired && t.hash == "" {
			looseTransfers = append(looseTransfers, j)
		}
	}
	for _, f := range formats {
		if f.pair >= 0 || f.hash != "" || len(looseTransfers) == 0 {
			continue
		}
		j := looseTransfers[0]
		looseTransfers = looseTransfers[1:]
		f.pair = j
		transfers[j].paired = true
	}
}

func mergeOptions(formats []*decodedFormat, transfers []*decodedTransfer) []DistributionOption {
	var out []DistributionOption
	i, j := 0, 0
	for i < len(formats) || j < len(transfers) {
		if j < len(transfers) && transfers[j].done {
			j++
			continue
		}
		if i < len(formats) {
			f := formats[i]
			if f.pair >= 0 {
				if j < f.pair && !transfers[j].paired {
					out = append(out, DistributionOption{TransferOption: &transfers[j].value})
					transfers[j].done = true
					j++
					continue
				}
				out = append(out, DistributionOption{Format: &f.value, TransferOption: &transfers[f.pair].value})
				transfers[f.pair].done = true
				i++
				continue
			}
			out = append(out, DistributionOption{Format: &f.value})
			i++
			continue
		}
		out = append(out, DistributionOption{TransferOption: &transfers[j].value})
		transfers[j].done = true
		j++
	}
	return out
}

// optionHash extracts the hash from an id of the form bml-<hash><suffix>.
func optionHash(el *etree.Element, suffix string) string {
	id, ok := element.Attr(el, "id")
	if !ok || !strings.HasPrefix(id, distributionIDPrefix) || !strings.HasSuffix(id, suffix) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(id, distributionIDPrefix), suffix)
}

func (d *decoder) format(mdf *etree.Element) Format {
	name, _ := element.DecodeAnchorAt(mdf, "gmd:name")
	return Format{
		Format:  name.Value,
		Href:    name.Href,
		Version: charString(mdf, "gmd:version"),
	}
}

func (d *decoder) transferOption(dto *etree.Element) TransferOption {
	var t TransferOption
	unit, hasUnit := element.CharacterStringAt(dto, "gmd:unitsOfDistribution")
	magnitude, hasMagnitude := d.float(dto, "gmd:transferSize/gco:Real", "Transfer size")
	if hasUnit || hasMagnitude {
		t.Size = &Size{Unit: unit, Magnitude: magnitude}
	}
	t.OnlineResource, _ = d.onlineResource(element.Find(dto, "gmd:onLine/gmd:CI_OnlineResource"))
	return t
}
