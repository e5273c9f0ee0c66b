package postprocess

import (
	"fmt"
	"strings"
)

// defaultSentences maps must-include labels to the sentence appended when
// the label is missing. The table is data-driven: domain packs may extend
// or replace it via ProcessorConfig.
func defaultSentences() map[string]string {
	return map[string]string{
		"강렬한 첫 문장": "지금 이 글을 끝까지 읽어야 할 이유가 있습니다.",
		"행동 유도":    "마음에 드셨다면 지금 바로 예약하거나 문의를 남겨 주세요.",
		"저장 유도":    "나중에 다시 보고 싶다면 이 글을 저장해 두세요.",
		"위치 안내":    "찾아오시는 길은 매장 페이지의 지도를 확인해 주세요.",
		"영업시간":     "영업시간은 매장 공지에서 한 번 더 확인하실 수 있습니다.",
	}
}

// ensureMandatory checks each must-include label with a case-insensitive
// containment heuristic. Only the first missing label is fixed per call:
// the matching sentence (or a generic fallback naming the label) is
// appended. Returns the possibly-extended text and the name of the label
// that was fixed, or "".
func ensureMandatory(text string, labels []string, sentences map[string]string) (string, string) {
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if satisfiesLabel(text, label, sentences) {
			continue
		}

		sentence := sentences[label]
		if sentence == "" {
			sentence = fmt.Sprintf("이 글에서 놓치면 아쉬운 포인트: %s.", label)
		}

		return strings.TrimRight(text, "\n") + "\n" + sentence, label
	}

	return text, ""
}

// satisfiesLabel treats a label as present when the text contains either
// the label itself or the sentence a previous run would have inserted for
// it; the second clause keeps repeated runs from re-inserting.
func satisfiesLabel(text, label string, sentences map[string]string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, strings.ToLower(label)) {
		return true
	}

	sentence := sentences[label]
	if sentence == "" {
		sentence = fmt.Sprintf("이 글에서 놓치면 아쉬운 포인트: %s.", label)
	}
	return strings.Contains(lower, strings.ToLower(sentence))
}
