// Package letters holds the office's fixed catalog of official letter
// types and assembles letter text from consumer-derived field values.
// The types are a closed enum, not a template engine: each type maps to
// one static Bangla body with a small set of interpolation points.
package letters

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tareqmahmud/letterdesk/internal/numeral"
)

// Type identifies one letter/application kind.
type Type string

const (
	TypeDue     Type = "due"     // dues notice with disconnection warning
	TypePDR     Type = "pdr"     // final notice before PDR certificate case
	TypeLegal   Type = "legal"   // pre-legal-action dues warning
	TypeRefund  Type = "refund"  // security deposit adjustment/refund
	TypePF      Type = "pf"      // power factor improvement and surcharge
	TypeLoad    Type = "load"    // regularization of excess load
	TypeSysLoss Type = "sysloss" // abnormal system loss, wiring inspection
	TypeBoard   Type = "board"   // meter board / service drop relocation
	TypeTrans   Type = "trans"   // transformer burned by consumer negligence
	TypeHooking Type = "hooking" // illegal use (hooking/bypass)
	TypeSeal    Type = "seal"    // meter seal tampering penalty
	TypeShift   Type = "shift"   // unauthorized meter relocation penalty
	TypeObst    Type = "obst"    // obstruction of official duty
	TypeGeneral Type = "general" // general administrative communication
)

// Info describes one catalog entry for listing endpoints.
type Info struct {
	Type    Type   `json:"type"`
	Label   string `json:"label"`
	Subject string `json:"subject"`
}

// catalog order matches the office's numbered menu.
var catalog = []Info{
	{TypeDue, "১. বকেয়া বিল ও সংযোগ বিচ্ছিন্নকরণ নোটিশ",
		"বিষয়: বকেয়া বিদ্যুৎ বিল পরিশোধ এবং সংযোগ বিচ্ছিন্নকরণ নোটিশ প্রসঙ্গে।"},
	{TypePDR, "২. বকেয়া আদায়ের লক্ষে PDR মামলা দায়েরের চূড়ান্ত নোটিশ",
		"বিষয়: বকেয়া আদায়ের লক্ষে PDR মামলা দায়েরের চূড়ান্ত নোটিশ।"},
	{TypeLegal, "৩. বকেয়া আদায়ের লক্ষে আইনি নোটিশ (Pre-Legal Action)",
		"বিষয়: দীর্ঘকালীন বকেয়া বিদ্যুৎ বিল আদায়ের লক্ষে আইনানুগ ব্যবস্থা গ্রহণের চূড়ান্ত সতর্কবার্তা (Final Notice before Legal Action)।"},
	{TypeRefund, "৪. নিরাপত্তা জামানত সমন্বয় ও রিফান্ড সংক্রান্ত তথ্য",
		"বিষয়: জমাকৃত নিরাপত্তা জামানত (Security Deposit) সমন্বয় অথবা রিফান্ড প্রদান সংক্রান্ত।"},
	{TypePF, "৫. পাওয়ার ফ্যাক্টর (PF) উন্নয়ন ও সারচার্জ সংক্রান্ত",
		"বিষয়: পাওয়ার ফ্যাক্টর (PF) উন্নয়ন এবং সারচার্জ আরোপ সংক্রান্ত।"},
	{TypeLoad, "৬. অনুমোদিত লোড অপেক্ষা অধিক লোড নিয়মিতকরণ",
		"বিষয়: অনুমোদিত লোড অপেক্ষা অধিক লোড ব্যবহার নিয়মিতকরণ প্রসঙ্গে।"},
	{TypeSysLoss, "৭. অস্বাভাবিক সিস্টেম লস ও অভ্যন্তরীণ ওয়্যারিং পরীক্ষা",
		"বিষয়: অস্বাভাবিক কারিগরি ক্ষতি (System Loss) নিয়ন্ত্রণ এবং অভ্যন্তরীণ ওয়্যারিং পরীক্ষা প্রসঙ্গে।"},
	{TypeBoard, "৮. মিটার বোর্ড ও সার্ভিস ড্রপ নিরাপদ স্থানে পুনঃস্থাপন",
		"বিষয়: মিটার বোর্ড ও সার্ভিস ড্রপ যথাযথ এবং নিরাপদ স্থানে পুনঃস্থাপন প্রসঙ্গে।"},
	{TypeTrans, "৯. গ্রাহক অবহেলায় ট্রান্সফরমার পুড়লে ব্যবস্থা গ্রহণ",
		"বিষয়: অনুমোদিত লোড অপেক্ষা অধিকতর লোড ব্যবহার এবং অবহেলার কারণে বিতরণ ট্রান্সফরমার পুড়ে যাওয়া সংক্রান্ত।"},
	{TypeHooking, "১০. অবৈধ বিদ্যুৎ ব্যবহার (হুকিং/বাইপাস) ও ফৌজদারি ব্যবস্থা",
		"বিষয়: অবৈধভাবে বিদ্যুৎ ব্যবহার (হুকিং/বাইপাস) এবং ফৌজদারি ব্যবস্থা গ্রহণ প্রসঙ্গে।"},
	{TypeSeal, "১১. মিটার সিল টেম্পারিং ও অবৈধ হস্তক্ষেপের দণ্ড",
		"বিষয়: মিটারের সিল টেম্পারিং, কারিগরি কারসাজি এবং অবৈধ হস্তক্ষেপের কারণে দণ্ডারোপ ও আইনানুগ ব্যবস্থা গ্রহণ সংক্রান্ত।"},
	{TypeShift, "১২. অনুমতি ব্যতিরেকে অবৈধ মিটার স্থানান্তর দণ্ড",
		"বিষয়: সমিতির পূর্বানুমতি ব্যতিরেকে অবৈধভাবে বিদ্যুৎ মিটার স্থানান্তর এবং দণ্ডারোপ প্রসঙ্গে।"},
	{TypeObst, "১৩. দাপ্তরিক কাজে বাধা প্রদান ও অসদাচরণ সংক্রান্ত",
		"বিষয়: সরকারি দাপ্তরিক কাজে বাধা প্রদান, সমিতির কর্মীদের সাথে অসদাচরণ এবং আইনানুগ ব্যবস্থা গ্রহণ সংক্রান্ত।"},
	{TypeGeneral, "১৪. সাধারণ প্রশাসনিক যোগাযোগ ও নির্দেশাবলী",
		"বিষয়: দাপ্তরিক আবেদন নিষ্পত্তি এবং কর্তৃপক্ষের সিদ্ধান্ত অবহিতকরণ প্রসঙ্গে।"},
}

var byType = func() map[Type]Info {
	m := make(map[Type]Info, len(catalog))
	for _, info := range catalog {
		m[info.Type] = info
	}
	return m
}()

// ErrUnknownType is returned when a letter type is not in the catalog.
var ErrUnknownType = errors.New("letters: unknown letter type")

// Catalog returns the full ordered list of letter types.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for t.
func Lookup(t Type) (Info, bool) {
	info, ok := byType[t]
	return info, ok
}

// Subject returns the official subject line for t.  This is the value
// stored on LetterActivity.Subject and used for duplicate suppression.
func Subject(t Type) (string, bool) {
	info, ok := byType[t]
	return info.Subject, ok
}

// PowerFactor derives the power factor from a month's kWh and peak/off-peak
// kVArh readings, formatted to four decimal places the way the office's
// surcharge letters quote it.  Returns "0.0000" for degenerate input.
func PowerFactor(kwh, peakKvar, offKvar float64) string {
	tkvar := peakKvar + offKvar
	pf := kwh / math.Sqrt(kwh*kwh+tkvar*tkvar)
	if math.IsNaN(pf) {
		return "0.0000"
	}
	return fmt.Sprintf("%.4f", pf)
}

// Fields are the consumer-derived values interpolated into a letter body.
// Numeric values are supplied as strings in either digit alphabet; they are
// rendered in Bangla digits.
type Fields struct {
	Name      string `json:"name"`
	Guardian  string `json:"guardian"`
	Address   string `json:"address"`
	AccNo     string `json:"accNo"`
	MeterNo   string `json:"meterNo"`
	Smarok    string `json:"smarok"` // memo number
	Date      string `json:"date"`
	DueAmount string `json:"dueAmount"`
	DueMonths string `json:"dueMonths"`
	KWH       string `json:"kwh"`      // pf letters only
	PeakKvar  string `json:"peakKvar"` // pf letters only
	OffKvar   string `json:"offKvar"`  // pf letters only
}

// Letter is a composed subject and body ready for preview/printing.
type Letter struct {
	Type    Type   `json:"type"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const dotted = "...................."

// orDots substitutes the office's fill-in dots for absent values.
func orDots(s string) string {
	if strings.TrimSpace(s) == "" {
		return dotted
	}
	return s
}

// bn renders a value in Bangla display digits, falling back to dots.
func bn(s string) string {
	return numeral.ToBangla(orDots(s))
}

// Compose renders the fixed body for t with the given field values.
func Compose(t Type, f Fields) (Letter, error) {
	info, ok := byType[t]
	if !ok {
		return Letter{}, ErrUnknownType
	}
	body, ok := bodies[t]
	if !ok {
		return Letter{}, ErrUnknownType
	}
	r := strings.NewReplacer(
		"{name}", orDots(f.Name),
		"{guardian}", orDots(f.Guardian),
		"{address}", orDots(f.Address),
		"{accNo}", bn(f.AccNo),
		"{meterNo}", bn(f.MeterNo),
		"{date}", bn(f.Date),
		"{dueAmount}", bn(f.DueAmount),
		"{dueMonths}", bn(f.DueMonths),
		"{pf}", numeral.ToBangla(pfFrom(f)),
	)
	return Letter{Type: t, Subject: info.Subject, Body: r.Replace(body)}, nil
}

func pfFrom(f Fields) string {
	return PowerFactor(parseNum(f.KWH), parseNum(f.PeakKvar), parseNum(f.OffKvar))
}

func parseNum(s string) float64 {
	var v float64
	// Readings may arrive in Bangla digits.
	if _, err := fmt.Sscanf(numeral.ToEnglish(strings.TrimSpace(s)), "%g", &v); err != nil {
		return 0
	}
	return v
}
