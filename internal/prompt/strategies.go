package prompt

import (
	"fmt"
	"strings"

	"CopyForge/internal/domain"
)

// materialBlock renders the shared raw-material list every platform
// template starts from. Missing optional fields are simply omitted.
func materialBlock(content domain.Content, profile domain.DomainProfile) string {
	var b strings.Builder
	b.WriteString("[작성 재료]\n")

	if content.Notes != "" {
		fmt.Fprintf(&b, "- 메모: %s\n", content.Notes)
	}
	if len(content.Keywords) > 0 {
		fmt.Fprintf(&b, "- 핵심 키워드: %s\n", strings.Join(content.Keywords, ", "))
	}
	if len(content.MenuNames) > 0 {
		fmt.Fprintf(&b, "- 메뉴/상품: %s\n", strings.Join(content.MenuNames, ", "))
	}
	if content.Region != "" {
		fmt.Fprintf(&b, "- 지역: %s\n", content.Region)
	}
	if content.Link != "" {
		fmt.Fprintf(&b, "- 링크: %s\n", content.Link)
	}
	for i, caption := range content.ImageCaptions {
		fmt.Fprintf(&b, "- 이미지 %d 설명: %s\n", i+1, caption)
	}
	if len(profile.SampleCTAs) > 0 {
		fmt.Fprintf(&b, "- 참고 CTA 예시: %s\n", strings.Join(profile.SampleCTAs, " / "))
	}
	if len(profile.HashtagSeeds) > 0 {
		fmt.Fprintf(&b, "- 해시태그 시드: %s\n", strings.Join(profile.HashtagSeeds, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func brandName(brand *domain.Brand, profile domain.DomainProfile) string {
	if brand != nil && brand.Name != "" {
		return brand.Name
	}
	if profile.Industry != "" {
		return profile.Industry
	}
	return "우리 매장"
}

// BlogStrategy targets the long-form blog channel.
type BlogStrategy struct{}

func (BlogStrategy) PlatformID() string { return "blog" }

func (BlogStrategy) BuildContentSection(content domain.Content, profile domain.DomainProfile, brand *domain.Brand) string {
	var b strings.Builder
	b.WriteString("### CONTENT: 블로그 원고 작성\n")
	fmt.Fprintf(&b, "%s의 블로그 포스팅 원고를 작성하세요.\n\n", brandName(brand, profile))
	b.WriteString(materialBlock(content, profile))
	b.WriteString("\n\n[구성 지침]\n")
	b.WriteString("1. 검색 독자의 고민을 짚어주는 도입부 2~3문단\n")
	b.WriteString("2. 소제목 3개 이상으로 나눈 본문 (각 소제목 아래 2~3문단, 체험담 어조)\n")
	b.WriteString("3. 핵심 키워드를 본문에 자연스럽게 3회 이상 배치\n")
	b.WriteString("4. 마무리 문단에 방문/문의를 유도하는 CTA 1개\n")
	b.WriteString("5. 해시태그는 본문에 넣지 말고 맨 마지막 줄에 한 줄로 모아 주세요\n")
	b.WriteString("6. 2,000자 내외의 긴 호흡으로, 문단 사이는 빈 줄로 구분")
	return b.String()
}

// ThreadsStrategy targets the short-form micro-blog channel with threaded
// replies. The output shape is exactly one main post plus three replies
// with distinct purposes.
type ThreadsStrategy struct{}

func (ThreadsStrategy) PlatformID() string { return "threads" }

func (ThreadsStrategy) BuildContentSection(content domain.Content, profile domain.DomainProfile, brand *domain.Brand) string {
	var b strings.Builder
	b.WriteString("### CONTENT: 스레드 게시물 작성\n")
	fmt.Fprintf(&b, "%s의 스레드용 짧은 게시물과 답글 묶음을 작성하세요.\n\n", brandName(brand, profile))
	b.WriteString(materialBlock(content, profile))
	b.WriteString("\n\n[출력 형식 — 정확히 이 4개 블록]\n")
	b.WriteString("본문: 스크롤을 멈추게 하는 첫 문장으로 시작하는 메인 게시물 1개 (500자 이내)\n")
	b.WriteString("답글1: 신뢰를 주는 근거나 경험담 한 가지 (숫자 과장 금지)\n")
	if content.Link != "" {
		fmt.Fprintf(&b, "답글2: 행동을 유도하는 문장과 링크 %s\n", content.Link)
	} else {
		b.WriteString("답글2: 예약/문의 방법을 안내하는 행동 유도 문장\n")
	}
	b.WriteString("답글3: 저장이나 북마크를 부르는 한 줄 (\"나중에 또 보고 싶다면\" 류)\n")
	b.WriteString("각 블록은 '본문:', '답글1:' 같은 라벨로 시작하고, 블록 사이는 빈 줄 없이 줄바꿈 1개로 구분하세요.")
	return b.String()
}

// InstagramStrategy targets the image-first social channel.
type InstagramStrategy struct{}

func (InstagramStrategy) PlatformID() string { return "instagram" }

func (InstagramStrategy) BuildContentSection(content domain.Content, profile domain.DomainProfile, brand *domain.Brand) string {
	var b strings.Builder
	b.WriteString("### CONTENT: 인스타그램 캡션 작성\n")
	fmt.Fprintf(&b, "%s의 인스타그램 피드 캡션을 작성하세요. 사진이 주인공이고 캡션은 거들 뿐입니다.\n\n", brandName(brand, profile))
	b.WriteString(materialBlock(content, profile))
	b.WriteString("\n\n[구성 지침]\n")
	b.WriteString("1. 첫 줄은 피드에서 잘리기 전에 시선을 붙잡는 한 문장\n")
	if len(content.ImageCaptions) > 0 {
		b.WriteString("2. 이미지 설명과 맞닿는 디테일을 본문에 반드시 반영\n")
	} else {
		b.WriteString("2. 사진 속 장면을 상상하게 하는 감각적 묘사 1~2문장\n")
	}
	b.WriteString("3. 전체 3~5줄의 짧은 호흡, 줄 단위로 끊어서 작성\n")
	b.WriteString("4. 마지막 줄 직전에 가벼운 CTA 1개\n")
	b.WriteString("5. 해시태그는 캡션 본문이 끝난 뒤 마지막 줄에 모아 주세요")
	return b.String()
}

// PlaceStrategy targets the local-business listing channel.
type PlaceStrategy struct{}

func (PlaceStrategy) PlatformID() string { return "place" }

func (PlaceStrategy) BuildContentSection(content domain.Content, profile domain.DomainProfile, brand *domain.Brand) string {
	var b strings.Builder
	b.WriteString("### CONTENT: 플레이스 소식 작성\n")
	fmt.Fprintf(&b, "%s의 플레이스(지역 매장 페이지)용 소식 글을 작성하세요.\n\n", brandName(brand, profile))
	b.WriteString(materialBlock(content, profile))
	b.WriteString("\n\n[구성 지침]\n")
	b.WriteString("1. 지금 방문해야 할 이유(신메뉴, 이벤트, 계절성)를 첫 문단에서 바로 제시\n")
	if content.Region != "" {
		fmt.Fprintf(&b, "2. '%s' 인근 고객이 검색으로 찾아올 수 있게 지역명을 1회 이상 자연스럽게 포함\n", content.Region)
	} else {
		b.WriteString("2. 근처 고객이 검색으로 찾아올 수 있게 동네 이름을 자연스럽게 포함\n")
	}
	b.WriteString("3. 영업시간, 예약 방법 등 실용 정보를 간결한 줄로 정리\n")
	b.WriteString("4. 전체 600자 이내, 과장 없는 안내 어조\n")
	b.WriteString("5. 마지막 줄에 방문을 권하는 한 문장으로 마무리")
	return b.String()
}

// GenericStrategy serves any platform ID without a registered strategy.
type GenericStrategy struct{}

func (GenericStrategy) PlatformID() string { return "generic" }

func (GenericStrategy) BuildContentSection(content domain.Content, profile domain.DomainProfile, brand *domain.Brand) string {
	var b strings.Builder
	b.WriteString("### CONTENT: 게시물 작성\n")
	fmt.Fprintf(&b, "%s의 SNS 게시물을 작성하세요.\n\n", brandName(brand, profile))
	b.WriteString(materialBlock(content, profile))
	b.WriteString("\n\n[구성 지침]\n")
	b.WriteString("1. 위 재료를 바탕으로 플랫폼 규칙을 지키는 홍보 글 1개를 작성\n")
	b.WriteString("2. 도입 → 본문 → 행동 유도 순서를 지키고, 과장 표현은 피하세요")
	return b.String()
}
