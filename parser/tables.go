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

package parser

import (
	"fmt"

	"scripta.cc/usfm/ast"
)

// lookup resolves a marker tag through one of the enumeration tables. The
// grammar admits only tagged tags, so a miss means the grammar and the
// tables have drifted apart: that is a bug, not bad input.
func lookup[V any](table map[string]V, family, tag string) V {
	v, ok := table[tag]
	if !ok {
		panic(fmt.Sprintf("usfm: no %s mapping for marker %q", family, tag))
	}
	return v
}

var bookIdentifiers = map[string]ast.BookIdentifier{
	"GEN": ast.Genesis,
	"EXO": ast.Exodus,
	"LEV": ast.Leviticus,
	"NUM": ast.Numbers,
	"DEU": ast.Deuteronomy,
	"JOS": ast.Joshua,
	"JDG": ast.Judges,
	"RUT": ast.Ruth,
	"1SA": ast.OneSamuel,
	"2SA": ast.TwoSamuel,
	"1KI": ast.OneKings,
	"2KI": ast.TwoKings,
	"1CH": ast.OneChronicles,
	"2CH": ast.TwoChronicles,
	"EZR": ast.Ezra,
	"NEH": ast.Nehemiah,
	"EST": ast.Esther,
	"JOB": ast.Job,
	"PSA": ast.Psalms,
	"PRO": ast.Proverbs,
	"ECC": ast.Ecclesiastes,
	"SNG": ast.SongOfSongs,
	"ISA": ast.Isaiah,
	"JER": ast.Jeremiah,
	"LAM": ast.Lamentations,
	"EZK": ast.Ezekiel,
	"DAN": ast.Daniel,
	"HOS": ast.Hosea,
	"JOL": ast.Joel,
	"AMO": ast.Amos,
	"OBA": ast.Obadiah,
	"JON": ast.Jonah,
	"MIC": ast.Micah,
	"NAM": ast.Nahum,
	"HAB": ast.Habakkuk,
	"ZEP": ast.Zephaniah,
	"HAG": ast.Haggai,
	"ZEC": ast.Zechariah,
	"MAL": ast.Malachi,
	"MAT": ast.Matthew,
	"MRK": ast.Mark,
	"LUK": ast.Luke,
	"JHN": ast.John,
	"ACT": ast.Acts,
	"ROM": ast.Romans,
	"1CO": ast.OneCorinthians,
	"2CO": ast.TwoCorinthians,
	"GAL": ast.Galatians,
	"EPH": ast.Ephesians,
	"PHP": ast.Philippians,
	"COL": ast.Colossians,
	"1TH": ast.OneThessalonians,
	"2TH": ast.TwoThessalonians,
	"1TI": ast.OneTimothy,
	"2TI": ast.TwoTimothy,
	"TIT": ast.Titus,
	"PHM": ast.Philemon,
	"HEB": ast.Hebrews,
	"JAS": ast.James,
	"1PE": ast.OnePeter,
	"2PE": ast.TwoPeter,
	"1JN": ast.OneJohn,
	"2JN": ast.TwoJohn,
	"3JN": ast.ThreeJohn,
	"JUD": ast.Jude,
	"REV": ast.Revelation,
	"TOB": ast.Tobit,
	"JDT": ast.Judith,
	"ESG": ast.EstherGreek,
	"WIS": ast.WisdomOfSolomon,
	"SIR": ast.Sirach,
	"BAR": ast.Baruch,
	"LJE": ast.LetterOfJeremiah,
	"S3Y": ast.SongOfThreeYoungMen,
	"SUS": ast.Susanna,
	"BEL": ast.BelAndTheDragon,
	"1MA": ast.OneMaccabees,
	"2MA": ast.TwoMaccabees,
	"3MA": ast.ThreeMaccabees,
	"4MA": ast.FourMaccabees,
	"1ES": ast.OneEsdras,
	"2ES": ast.TwoEsdras,
	"MAN": ast.PrayerOfManasseh,
	"PS2": ast.Psalm151,
	"ODA": ast.Odes,
	"PSS": ast.PsalmsOfSolomon,
	"EZA": ast.EzraApocalypse,
	"5EZ": ast.FiveEzra,
	"6EZ": ast.SixEzra,
	"DAG": ast.DanielGreek,
	"PS3": ast.Psalms152To155,
	"2BA": ast.TwoBaruch,
	"LBA": ast.LetterOfBaruch,
	"JUB": ast.Jubilees,
	"ENO": ast.Enoch,
	"1MQ": ast.OneMeqabyan,
	"2MQ": ast.TwoMeqabyan,
	"3MQ": ast.ThreeMeqabyan,
	"REP": ast.Reproof,
	"4BA": ast.FourBaruch,
	"LAO": ast.LetterToLaodiceans,
	"FRT": ast.FrontMatter,
	"BAK": ast.BackMatter,
	"OTH": ast.OtherMatter,
	"INT": ast.IntroductionMatter,
	"CNC": ast.Concordance,
	"GLO": ast.Glossary,
	"TDX": ast.TopicalIndex,
	"NDX": ast.NamesIndex,
	"XXA": ast.ExtraA,
	"XXB": ast.ExtraB,
	"XXC": ast.ExtraC,
	"XXD": ast.ExtraD,
	"XXE": ast.ExtraE,
	"XXF": ast.ExtraF,
	"XXG": ast.ExtraG,
}

var bookEncodings = map[string]ast.BookEncoding{
	"CP-1252": ast.CP1252,
	"CP-1251": ast.CP1251,
	"UTF-8":   ast.UTF8,
	"UTF-16":  ast.UTF16,
}

var paragraphStyles = map[string]ast.ParagraphKind{
	"p":   ast.ParaNormal,
	"m":   ast.ParaMargin,
	"po":  ast.ParaOpening,
	"pr":  ast.ParaRight,
	"cls": ast.ParaClosure,
	"pmo": ast.ParaEmbeddedOpening,
	"pm":  ast.ParaEmbedded,
	"pmc": ast.ParaEmbeddedClosing,
	"pmr": ast.ParaEmbeddedRefrain,
	"mi":  ast.ParaMarginIndented,
	"nb":  ast.ParaBasic,
	"pc":  ast.ParaCentered,
	"lit": ast.ParaLiturgicalNote,
}

var numberedParagraphStyles = map[string]ast.ParagraphKind{
	"pi": ast.ParaIndented,
	"ph": ast.ParaHangingIndented,
}

var poetryStyles = map[string]ast.PoetryKind{
	"qr": ast.PoetryRight,
	"qc": ast.PoetryCentered,
	"qa": ast.PoetryAcrosticHeading,
	"qd": ast.PoetryDescriptive,
}

var numberedPoetryStyles = map[string]ast.PoetryKind{
	"q":  ast.PoetryNormal,
	"qm": ast.PoetryEmbedded,
}

var elementTypes = map[string]ast.ElementKind{
	"rem": ast.ElemRemark,
	"h":   ast.ElemHeader,
	"ip":  ast.ElemIntro,
	"ipi": ast.ElemIndentedIntro,
	"im":  ast.ElemMarginIntro,
	"imi": ast.ElemMarginIndentedIntro,
	"ipq": ast.ElemQuotedIntro,
	"imq": ast.ElemMarginQuotedIntro,
	"ipr": ast.ElemRightIntro,
	"ib":  ast.ElemBlankIntro,
	"iot": ast.ElemOutlineIntro,
	"iex": ast.ElemBridgeIntro,
	"ie":  ast.ElemEndIntro,
	"cl":  ast.ElemChapterLabel,
	"cp":  ast.ElemChapterPublishedLabel,
	"cd":  ast.ElemChapterDescription,
	"mr":  ast.ElemMajorReference,
	"sr":  ast.ElemReference,
	"r":   ast.ElemParallel,
	"d":   ast.ElemDescriptive,
	"sp":  ast.ElemSpeaker,
}

var numberedElementTypes = map[string]ast.ElementKind{
	"toc":  ast.ElemContents,
	"toca": ast.ElemAltContents,
	"imt":  ast.ElemMajorIntro,
	"is":   ast.ElemSectionIntro,
	"iq":   ast.ElemPoetryIntro,
	"ili":  ast.ElemListIntro,
	"io":   ast.ElemEntryIntro,
	"imte": ast.ElemMajorTitleEndingIntro,
	"mt":   ast.ElemMajorTitle,
	"mte":  ast.ElemMajorTitleEnding,
	"ms":   ast.ElemMajorSection,
	"s":    ast.ElemSection,
	"sd":   ast.ElemDivision,
}

var emptyTypes = map[string]ast.EmptyType{
	"b":  ast.Blank,
	"pb": ast.PageBreak,
}

var characterTypes = map[string]ast.CharacterType{
	"ior":   ast.CharIntroOutline,
	"iqt":   ast.CharIntroQuote,
	"rq":    ast.CharInlineQuote,
	"vp":    ast.CharPublishedVerse,
	"qs":    ast.CharSelah,
	"qac":   ast.CharAcrosticLetter,
	"add":   ast.CharAddition,
	"bk":    ast.CharBookQuote,
	"dc":    ast.CharDeuteroAddition,
	"k":     ast.CharKeyword,
	"nd":    ast.CharDeity,
	"ord":   ast.CharOrdinal,
	"pn":    ast.CharProper,
	"png":   ast.CharGeographic,
	"addpn": ast.CharProperAddition,
	"qt":    ast.CharQuotedText,
	"sig":   ast.CharSignature,
	"sls":   ast.CharSecondaryText,
	"tl":    ast.CharTransliterated,
	"wj":    ast.CharJesus,
	"em":    ast.CharEmphasis,
	"bd":    ast.CharBold,
	"it":    ast.CharItalic,
	"bdit":  ast.CharBoldItalic,
	"no":    ast.CharNormal,
	"sc":    ast.CharSmallCap,
	"sup":   ast.CharSuperscript,
	"ndx":   ast.CharIndex,
	"rb":    ast.CharRuby,
	"pro":   ast.CharPronunciation,
	"w":     ast.CharWord,
	"wg":    ast.CharGreekWord,
	"wh":    ast.CharHebrewWord,
	"wa":    ast.CharAramaicWord,
	"jmp":   ast.CharLink,
}

var footnoteStyles = map[string]ast.FootnoteStyle{
	"f":  ast.StyleFootnote,
	"fe": ast.StyleEndnote,
}

var crossRefStyles = map[string]ast.CrossRefStyle{
	"x": ast.StyleCrossRef,
}

var footnoteElementStyles = map[string]ast.FootnoteElementStyle{
	"fq":  ast.FnTranslationQuote,
	"fqa": ast.FnAltTranslationQuote,
	"fk":  ast.FnKeyword,
	"fl":  ast.FnLabel,
	"fw":  ast.FnWitness,
	"fp":  ast.FnParagraph,
	"ft":  ast.FnText,
	"fdc": ast.FnDeuteroText,
	"fm":  ast.FnReferenceMark,
}

var crossRefElementStyles = map[string]ast.CrossRefElementStyle{
	"xk":  ast.XRefKeyword,
	"xq":  ast.XRefQuote,
	"xt":  ast.XRefTarget,
	"xta": ast.XRefExtraTarget,
	"xop": ast.XRefOrigin,
	"xot": ast.XRefOldTarget,
	"xnt": ast.XRefNewTarget,
	"xdc": ast.XRefDeuteroTarget,
	"rq":  ast.XRefInlineQuote,
}
