// MIT License

// Copyright (c) 2025 The usfm Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

// A BookIdentifier is the canonical book named by a 3-letter \id code.
type BookIdentifier int

const (
	Genesis BookIdentifier = iota
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	OneSamuel
	TwoSamuel
	OneKings
	TwoKings
	OneChronicles
	TwoChronicles
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSongs
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	OneCorinthians
	TwoCorinthians
	Galatians
	Ephesians
	Philippians
	Colossians
	OneThessalonians
	TwoThessalonians
	OneTimothy
	TwoTimothy
	Titus
	Philemon
	Hebrews
	James
	OnePeter
	TwoPeter
	OneJohn
	TwoJohn
	ThreeJohn
	Jude
	Revelation

	Tobit
	Judith
	EstherGreek
	WisdomOfSolomon
	Sirach
	Baruch
	LetterOfJeremiah
	SongOfThreeYoungMen
	Susanna
	BelAndTheDragon
	OneMaccabees
	TwoMaccabees
	ThreeMaccabees
	FourMaccabees
	OneEsdras
	TwoEsdras
	PrayerOfManasseh
	Psalm151
	Odes
	PsalmsOfSolomon

	EzraApocalypse
	FiveEzra
	SixEzra
	DanielGreek
	Psalms152To155
	TwoBaruch
	LetterOfBaruch
	Jubilees
	Enoch
	OneMeqabyan
	TwoMeqabyan
	ThreeMeqabyan
	Reproof
	FourBaruch
	LetterToLaodiceans

	FrontMatter
	BackMatter
	OtherMatter
	IntroductionMatter
	Concordance
	Glossary
	TopicalIndex
	NamesIndex
	ExtraA
	ExtraB
	ExtraC
	ExtraD
	ExtraE
	ExtraF
	ExtraG
)

var bookNames = [...]string{
	Genesis:          "Genesis",
	Exodus:           "Exodus",
	Leviticus:        "Leviticus",
	Numbers:          "Numbers",
	Deuteronomy:      "Deuteronomy",
	Joshua:           "Joshua",
	Judges:           "Judges",
	Ruth:             "Ruth",
	OneSamuel:        "1 Samuel",
	TwoSamuel:        "2 Samuel",
	OneKings:         "1 Kings",
	TwoKings:         "2 Kings",
	OneChronicles:    "1 Chronicles",
	TwoChronicles:    "2 Chronicles",
	Ezra:             "Ezra",
	Nehemiah:         "Nehemiah",
	Esther:           "Esther",
	Job:              "Job",
	Psalms:           "Psalms",
	Proverbs:         "Proverbs",
	Ecclesiastes:     "Ecclesiastes",
	SongOfSongs:      "Song of Songs",
	Isaiah:           "Isaiah",
	Jeremiah:         "Jeremiah",
	Lamentations:     "Lamentations",
	Ezekiel:          "Ezekiel",
	Daniel:           "Daniel",
	Hosea:            "Hosea",
	Joel:             "Joel",
	Amos:             "Amos",
	Obadiah:          "Obadiah",
	Jonah:            "Jonah",
	Micah:            "Micah",
	Nahum:            "Nahum",
	Habakkuk:         "Habakkuk",
	Zephaniah:        "Zephaniah",
	Haggai:           "Haggai",
	Zechariah:        "Zechariah",
	Malachi:          "Malachi",
	Matthew:          "Matthew",
	Mark:             "Mark",
	Luke:             "Luke",
	John:             "John",
	Acts:             "Acts",
	Romans:           "Romans",
	OneCorinthians:   "1 Corinthians",
	TwoCorinthians:   "2 Corinthians",
	Galatians:        "Galatians",
	Ephesians:        "Ephesians",
	Philippians:      "Philippians",
	Colossians:       "Colossians",
	OneThessalonians: "1 Thessalonians",
	TwoThessalonians: "2 Thessalonians",
	OneTimothy:       "1 Timothy",
	TwoTimothy:       "2 Timothy",
	Titus:            "Titus",
	Philemon:         "Philemon",
	Hebrews:          "Hebrews",
	James:            "James",
	OnePeter:         "1 Peter",
	TwoPeter:         "2 Peter",
	OneJohn:          "1 John",
	TwoJohn:          "2 John",
	ThreeJohn:        "3 John",
	Jude:             "Jude",
	Revelation:       "Revelation",

	Tobit:               "Tobit",
	Judith:              "Judith",
	EstherGreek:         "Esther (Greek)",
	WisdomOfSolomon:     "Wisdom of Solomon",
	Sirach:              "Sirach",
	Baruch:              "Baruch",
	LetterOfJeremiah:    "Letter of Jeremiah",
	SongOfThreeYoungMen: "Song of the Three Young Men",
	Susanna:             "Susanna",
	BelAndTheDragon:     "Bel and the Dragon",
	OneMaccabees:        "1 Maccabees",
	TwoMaccabees:        "2 Maccabees",
	ThreeMaccabees:      "3 Maccabees",
	FourMaccabees:       "4 Maccabees",
	OneEsdras:           "1 Esdras",
	TwoEsdras:           "2 Esdras",
	PrayerOfManasseh:    "Prayer of Manasseh",
	Psalm151:            "Psalm 151",
	Odes:                "Odes",
	PsalmsOfSolomon:     "Psalms of Solomon",

	EzraApocalypse:     "Ezra Apocalypse",
	FiveEzra:           "5 Ezra",
	SixEzra:            "6 Ezra",
	DanielGreek:        "Daniel (Greek)",
	Psalms152To155:     "Psalms 152-155",
	TwoBaruch:          "2 Baruch",
	LetterOfBaruch:     "Letter of Baruch",
	Jubilees:           "Jubilees",
	Enoch:              "Enoch",
	OneMeqabyan:        "1 Meqabyan",
	TwoMeqabyan:        "2 Meqabyan",
	ThreeMeqabyan:      "3 Meqabyan",
	Reproof:            "Reproof",
	FourBaruch:         "4 Baruch",
	LetterToLaodiceans: "Letter to the Laodiceans",

	FrontMatter:        "Front Matter",
	BackMatter:         "Back Matter",
	OtherMatter:        "Other Matter",
	IntroductionMatter: "Introduction",
	Concordance:        "Concordance",
	Glossary:           "Glossary",
	TopicalIndex:       "Topical Index",
	NamesIndex:         "Names Index",
	ExtraA:             "Extra A",
	ExtraB:             "Extra B",
	ExtraC:             "Extra C",
	ExtraD:             "Extra D",
	ExtraE:             "Extra E",
	ExtraF:             "Extra F",
	ExtraG:             "Extra G",
}

// String returns the book's conventional English title.
func (b BookIdentifier) String() string {
	if b < 0 || int(b) >= len(bookNames) {
		return "Unknown"
	}
	return bookNames[b]
}

// A BookEncoding is the character set named by an \ide marker.
type BookEncoding int

const (
	CP1252 BookEncoding = iota // CP-1252
	CP1251                     // CP-1251
	UTF8                       // UTF-8
	UTF16                      // UTF-16
)

// An EmptyType is a contentless layout marker family.
type EmptyType int

const (
	Blank     EmptyType = iota // \b
	PageBreak                  // \pb
)

// A ParagraphStyle pairs a paragraph family with its numeric level.
// Level is meaningful only for the numbered families ParaIndented and
// ParaHangingIndented.
type ParagraphStyle struct {
	Kind  ParagraphKind
	Level uint8
}

// A ParagraphKind is the set of valid paragraph marker families.
type ParagraphKind int

const (
	ParaNormal          ParagraphKind = iota // \p
	ParaMargin                               // \m
	ParaOpening                              // \po
	ParaRight                                // \pr
	ParaClosure                              // \cls
	ParaEmbeddedOpening                      // \pmo
	ParaEmbedded                             // \pm
	ParaEmbeddedClosing                      // \pmc
	ParaEmbeddedRefrain                      // \pmr
	ParaMarginIndented                       // \mi
	ParaBasic                                // \nb
	ParaCentered                             // \pc
	ParaLiturgicalNote                       // \lit
	ParaIndented                             // \pi<n>
	ParaHangingIndented                      // \ph<n>
)

// A PoetryStyle pairs a poetry family with its numeric level. Level is
// meaningful only for PoetryNormal and PoetryEmbedded.
type PoetryStyle struct {
	Kind  PoetryKind
	Level uint8
}

// A PoetryKind is the set of valid poetry marker families.
type PoetryKind int

const (
	PoetryNormal          PoetryKind = iota // \q<n>
	PoetryRight                             // \qr
	PoetryCentered                          // \qc
	PoetryAcrosticHeading                   // \qa
	PoetryDescriptive                       // \qd
	PoetryEmbedded                          // \qm<n>
)

// An ElementType pairs an element family with its numeric level. Level is
// meaningful only for the numbered families.
type ElementType struct {
	Kind  ElementKind
	Level uint8
}

// An ElementKind is the set of valid element marker families.
type ElementKind int

const (
	ElemRemark                ElementKind = iota // \rem
	ElemHeader                                   // \h
	ElemContents                                 // \toc<n>
	ElemAltContents                              // \toca<n>
	ElemMajorIntro                               // \imt<n>
	ElemSectionIntro                             // \is<n>
	ElemIntro                                    // \ip
	ElemIndentedIntro                            // \ipi
	ElemMarginIntro                              // \im
	ElemMarginIndentedIntro                      // \imi
	ElemQuotedIntro                              // \ipq
	ElemMarginQuotedIntro                        // \imq
	ElemRightIntro                               // \ipr
	ElemPoetryIntro                              // \iq<n>
	ElemBlankIntro                               // \ib
	ElemListIntro                                // \ili<n>
	ElemOutlineIntro                             // \iot
	ElemEntryIntro                               // \io<n>
	ElemBridgeIntro                              // \iex
	ElemMajorTitleEndingIntro                    // \imte<n>
	ElemEndIntro                                 // \ie
	ElemChapterLabel                             // \cl
	ElemChapterPublishedLabel                    // \cp
	ElemChapterDescription                       // \cd
	ElemMajorTitle                               // \mt<n>
	ElemMajorTitleEnding                         // \mte<n>
	ElemMajorSection                             // \ms<n>
	ElemMajorReference                           // \mr
	ElemSection                                  // \s<n>
	ElemReference                                // \sr
	ElemParallel                                 // \r
	ElemDescriptive                              // \d
	ElemSpeaker                                  // \sp
	ElemDivision                                 // \sd<n>
)

// A CharacterType is the set of valid inline style families.
type CharacterType int

const (
	CharIntroOutline   CharacterType = iota // \ior
	CharIntroQuote                          // \iqt
	CharInlineQuote                         // \rq
	CharPublishedVerse                      // \vp
	CharSelah                               // \qs
	CharAcrosticLetter                      // \qac
	CharAddition                            // \add
	CharBookQuote                           // \bk
	CharDeuteroAddition                     // \dc
	CharKeyword                             // \k
	CharDeity                               // \nd
	CharOrdinal                             // \ord
	CharProper                              // \pn
	CharGeographic                          // \png
	CharProperAddition                      // \addpn
	CharQuotedText                          // \qt
	CharSignature                           // \sig
	CharSecondaryText                       // \sls
	CharTransliterated                      // \tl
	CharJesus                               // \wj
	CharEmphasis                            // \em
	CharBold                                // \bd
	CharItalic                              // \it
	CharBoldItalic                          // \bdit
	CharNormal                              // \no
	CharSmallCap                            // \sc
	CharSuperscript                         // \sup
	CharIndex                               // \ndx
	CharRuby                                // \rb
	CharPronunciation                       // \pro
	CharWord                                // \w
	CharGreekWord                           // \wg
	CharHebrewWord                          // \wh
	CharAramaicWord                         // \wa
	CharLink                                // \jmp
)

// A FootnoteStyle is the footnote container family.
type FootnoteStyle int

const (
	StyleFootnote FootnoteStyle = iota // \f
	StyleEndnote                       // \fe
)

// A CrossRefStyle is the cross-reference container family.
type CrossRefStyle int

const (
	StyleCrossRef CrossRefStyle = iota // \x
)

// A FootnoteElementStyle is the set of valid footnote body element families.
type FootnoteElementStyle int

const (
	FnTranslationQuote    FootnoteElementStyle = iota // \fq
	FnAltTranslationQuote                             // \fqa
	FnKeyword                                         // \fk
	FnLabel                                           // \fl
	FnWitness                                         // \fw
	FnParagraph                                       // \fp
	FnText                                            // \ft
	FnDeuteroText                                     // \fdc
	FnReferenceMark                                   // \fm
)

// A CrossRefElementStyle is the set of valid cross-reference body element
// families.
type CrossRefElementStyle int

const (
	XRefKeyword       CrossRefElementStyle = iota // \xk
	XRefQuote                                     // \xq
	XRefTarget                                    // \xt
	XRefExtraTarget                               // \xta
	XRefOrigin                                    // \xop
	XRefOldTarget                                 // \xot
	XRefNewTarget                                 // \xnt
	XRefDeuteroTarget                             // \xdc
	XRefInlineQuote                               // \rq
)

// A Caller describes the glyph a publisher chose for a note marker.
type Caller struct {
	Kind  CallerKind
	Glyph rune // set only for Literal
}

// A CallerKind classifies a note caller token.
type CallerKind int

const (
	Auto    CallerKind = iota // '+': the renderer numbers the note
	None                      // '-': no visible caller
	Literal                   // any other glyph, rendered as written
)
