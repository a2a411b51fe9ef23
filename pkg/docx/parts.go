package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	relsNS          = "http://schemas.openxmlformats.org/package/2006/relationships"
	officeDocRelsNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	wordNS          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

var imageContentTypes = map[ImageFormat]string{
	ImagePNG:  "image/png",
	ImageJPEG: "image/jpeg",
	ImageGIF:  "image/gif",
}

func contentTypesXML(media []mediaPart) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	seen := map[ImageFormat]bool{}
	for _, m := range media {
		if seen[m.format] {
			continue
		}
		seen[m.format] = true
		fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, m.format, imageContentTypes[m.format])
	}
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	b.WriteString(`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

func rootRelsXML() []byte {
	return []byte(xml.Header +
		`<Relationships xmlns="` + relsNS + `">` +
		`<Relationship Id="rId1" Type="` + officeDocRelsNS + `/officeDocument" Target="word/document.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
		`<Relationship Id="rId3" Type="` + officeDocRelsNS + `/extended-properties" Target="docProps/app.xml"/>` +
		`</Relationships>`)
}

func documentRelsXML(media []mediaPart) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Relationships xmlns="` + relsNS + `">`)
	b.WriteString(`<Relationship Id="rId1" Type="` + officeDocRelsNS + `/styles" Target="styles.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="` + officeDocRelsNS + `/numbering" Target="numbering.xml"/>`)
	for _, m := range media {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s/image" Target="media/%s"/>`, m.relID, officeDocRelsNS, m.name)
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

func stylesXML(d *Document) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:styles xmlns:w="` + wordNS + `">`)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	b.WriteString(runProps(d.Defaults.Font, false, false, "", d.Defaults.Size))
	b.WriteString(`</w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults>`)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	b.WriteString(`<w:style w:type="paragraph" w:styleId="` + HeadingStyleID + `"><w:name w:val="heading 1"/>` +
		`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
		`<w:pPr><w:keepNext/><w:outlineLvl w:val="0"/></w:pPr><w:rPr>`)
	b.WriteString(runProps(d.Heading.Font, true, false, d.Heading.Color, d.Heading.Size))
	b.WriteString(`</w:rPr></w:style>`)
	b.WriteString(`<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/>` +
		`<w:uiPriority w:val="99"/><w:semiHidden/><w:unhideWhenUsed/>` +
		`<w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/>` +
		`<w:left w:w="108" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/>` +
		`</w:tblCellMar></w:tblPr></w:style>`)
	b.WriteString(`</w:styles>`)
	return []byte(b.String())
}

func numberingXML() []byte {
	return []byte(xml.Header +
		`<w:numbering xmlns:w="` + wordNS + `">` +
		`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="hybridMultilevel"/>` +
		`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="` + "●" + `"/>` +
		`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
		`</w:abstractNum>` +
		fmt.Sprintf(`<w:num w:numId="%d"><w:abstractNumId w:val="0"/></w:num>`, bulletNumID) +
		`</w:numbering>`)
}

func corePropsXML(d *Document) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if d.Title != "" {
		b.WriteString(`<dc:title>` + escape(d.Title) + `</dc:title>`)
	}
	if d.Creator != "" {
		b.WriteString(`<dc:creator>` + escape(d.Creator) + `</dc:creator>`)
	}
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

func appPropsXML() []byte {
	return []byte(xml.Header +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>resume-studio</Application></Properties>`)
}
