package store

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
)

// DemoPassword is the shared password of every seeded demo account.
const DemoPassword = "otgil1234!"

// Seed loads the demo community: the same users, closets, parties and
// catalog the original product bootstrapped with.
func Seed(s *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	pw := string(hash)
	now := time.Now()

	return s.Update(func(st *State) error {
		st.Users = []domain.User{
			{ID: "user1", Nickname: "EcoFashionista", Email: "eco@fashion.com", Password: pw, PhoneNumber: "010-1111-2222", IsAdmin: true, Neighbors: []string{"user2", "user4", "user5", "user6", "user7", "user8"}, CreatedAt: now, UpdatedAt: now},
			{ID: "user2", Nickname: "해삐영", Email: "namu@lazy.com", Password: pw, PhoneNumber: "010-3333-4444", Neighbors: []string{"user1"}, CreatedAt: now, UpdatedAt: now},
			{ID: "user3", Nickname: "StyleSeeker", Email: "style@seeker.com", Password: pw, PhoneNumber: "010-5555-6666", Neighbors: []string{}, CreatedAt: now, UpdatedAt: now},
			{ID: "user4", Nickname: "GreenThumb", Email: "green@thumb.com", Password: pw, PhoneNumber: "010-4444-1111", Neighbors: []string{"user1"}, CreatedAt: now, UpdatedAt: now},
			{ID: "user5", Nickname: "UpcycleArt", Email: "art@upcycle.com", Password: pw, PhoneNumber: "010-5555-2222", Neighbors: []string{"user1"}, CreatedAt: now, UpdatedAt: now},
			{ID: "user6", Nickname: "VintageVibes", Email: "vintage@vibes.com", Password: pw, PhoneNumber: "010-6666-3333", Neighbors: []string{"user1"}, CreatedAt: now, UpdatedAt: now},
			{ID: "user7", Nickname: "미니멀衣스트", Email: "minimal@wardrobe.com", Password: pw, PhoneNumber: "010-7777-4444", Neighbors: []string{"user1"}, CreatedAt: now, UpdatedAt: now},
			{ID: "user8", Nickname: "지속가능맨", Email: "sustain@man.com", Password: pw, PhoneNumber: "010-8888-5555", Neighbors: []string{"user1"}, CreatedAt: now, UpdatedAt: now},
		}

		st.Items = []domain.ClothingItem{
			{ID: "item1", UserID: "user1", UserNickname: "EcoFashionista", Name: "Vintage Denim Jacket", Description: "A great condition Levis denim jacket.", Category: domain.CategoryJacket, Size: "L",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2020", MetWhere: "Flea Market", WhyGot: "Classic style", WornCount: 50, WhyLetGo: "Too small", FinalMessage: "Hope you like it!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item2", UserID: "user2", UserNickname: "해삐영", Name: "Patchwork Jogger Pants", Description: "Comfortable cotton pants with unique patchwork details.", Category: domain.CategoryJeans, Size: "M",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2021", MetWhere: "Online", WhyGot: "Unique design", WornCount: 20, WhyLetGo: "Changed style", FinalMessage: "Enjoy!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item3", UserID: "user1", UserNickname: "EcoFashionista", Name: "Reconstructed Floral Dress", Description: "A light, chiffon long dress, recreated from vintage fabrics.", Category: domain.CategoryDress, Size: "S",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2022", MetWhere: "Gift", WhyGot: "A present", WornCount: 5, WhyLetGo: "Not my color", FinalMessage: "Be happy!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item4", UserID: "user2", UserNickname: "해삐영", Name: "Embroidered T-Shirt", Description: "A basic white tee with a hand-embroidered flower.", Category: domain.CategoryTShirt, Size: "M", IsListedForExchange: true,
				Tag: domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "EcoFashionista", ReceivedAt: "Birthday Party", FirstImpression: "So cute!", HelloMessage: "My new favorite tee!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item5", UserID: "user1", UserNickname: "EcoFashionista", Name: "Handmade Chain Necklace", Description: "A silver necklace made from upcycled materials.", Category: domain.CategoryAccessory, Size: "FREE", IsListedForExchange: true,
				Tag: domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "UpcycleArt", ReceivedAt: "Workshop", FirstImpression: "Stunning!", HelloMessage: "Wear it everyday."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item6", UserID: "user2", UserNickname: "해삐영", Name: "Oversized Linen Shirt", Description: "A cool, oversized linen shirt, naturally dyed.", Category: domain.CategoryTShirt, Size: "L",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2022 Summer", MetWhere: "Local designer", WhyGot: "Beautiful color", WornCount: 10, WhyLetGo: "Too big now", FinalMessage: "Enjoy the comfy fit."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item7", UserID: "user2", UserNickname: "해삐영", Name: "Cool Graphic Tee", Description: "A barely worn graphic t-shirt, printed on a repurposed shirt.", Category: domain.CategoryTShirt, Size: "M",
				PartySubmissionStatus: domain.SubmissionPending, SubmittedPartyID: "party1",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2022년 여름", MetWhere: "온라인 쇼핑몰", WhyGot: "좋아하는 아티스트의 한정판이라서", WornCount: 5, WhyLetGo: "이제는 스타일이 바뀌어서", FinalMessage: "새로운 주인 만나서 더 멋지게 입혀주길!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item8", UserID: "user1", UserNickname: "EcoFashionista", Name: "Woven Handbag", Description: "A stylish woven handbag, made from recycled materials.", Category: domain.CategoryAccessory, Size: "FREE",
				PartySubmissionStatus: domain.SubmissionApproved, SubmittedPartyID: "party1",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "작년 가을", MetWhere: "제주도 소품샵", WhyGot: "독특한 디자인에 반해서", WornCount: 20, WhyLetGo: "더 큰 가방이 필요해져서", FinalMessage: "좋은 추억이 많은 가방이야, 잘 부탁해."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item9", UserID: "user2", UserNickname: "해삐영", Name: "클래식 화이트 블라우스", Description: "친구에게서 받은 활용도 높은 흰색 블라우스입니다.", Category: domain.CategoryTShirt, Size: "S", IsListedForExchange: true,
				Tag: domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "EcoFashionista", ReceivedAt: "EcoFashionista의 연말 옷장 정리 파티", FirstImpression: "깔끔하고 어디에나 잘 어울릴 것 같았어요!", HelloMessage: "앞으로 잘 부탁해, 나의 새로운 최애템!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item10", UserID: "user1", UserNickname: "EcoFashionista", Name: "가죽 크로스백", Description: "매일 사용하기 좋은 튼튼하고 스타일리시한 가방입니다.", Category: domain.CategoryAccessory, Size: "FREE", IsListedForExchange: true,
				Tag: domain.NewHelloItemTag(domain.HelloTag{ReceivedFrom: "해삐영", ReceivedAt: "성수동 플리마켓 애프터파티", FirstImpression: "빈티지한 느낌이 마음에 쏙 들었어요.", HelloMessage: "오래오래 함께하자!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item11", UserID: "user4", UserNickname: "GreenThumb", Name: "자연염색 린넨 셔츠", Description: "쪽빛으로 물들인 시원한 린넨 셔츠입니다.", Category: domain.CategoryTShirt, Size: "M",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2023년 봄", MetWhere: "인사동 공방", WhyGot: "자연스러운 색감에 반해서", WornCount: 10, WhyLetGo: "비슷한 셔츠가 많아져서", FinalMessage: "편안하게 잘 입어주세요."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item12", UserID: "user5", UserNickname: "UpcycleArt", Name: "실크스크린 에코백", Description: "직접 디자인한 패턴을 실크스크린으로 찍어낸 에코백.", Category: domain.CategoryAccessory, Size: "FREE",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2023년 여름", MetWhere: "작업실", WhyGot: "작품 활동의 일환으로 제작", WornCount: 3, WhyLetGo: "새로운 디자인을 구상 중이라", FinalMessage: "당신의 일상에 예술이 함께하길!"}), CreatedAt: now, UpdatedAt: now},
			{ID: "item13", UserID: "user6", UserNickname: "VintageVibes", Name: "80년대 레트로 원피스", Description: "화려한 패턴이 돋보이는 80년대 풍의 빈티지 원피스.", Category: domain.CategoryDress, Size: "S",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2022년 가을", MetWhere: "광장시장 구제상가", WhyGot: "독특한 패턴이 마음에 들어서", WornCount: 7, WhyLetGo: "특별한 날에만 입게 되어서", FinalMessage: "이 옷을 입고 멋진 추억을 만드세요."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item14", UserID: "user7", UserNickname: "미니멀衣스트", Name: "모던 베이지 슬랙스", Description: "어디에나 잘 어울리는 기본 중의 기본, 베이지 슬랙스.", Category: domain.CategoryJeans, Size: "M",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2023년 초", MetWhere: "백화점", WhyGot: "기본 아이템으로 구매", WornCount: 30, WhyLetGo: "살이 빠져 사이즈가 맞지 않음", FinalMessage: "오래오래 아껴 입어주실 분을 찾아요."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item15", UserID: "user8", UserNickname: "지속가능맨", Name: "튼튼한 코튼 자켓", Description: "가을에 입기 좋은 튼튼한 코튼 소재의 워크 자켓입니다.", Category: domain.CategoryJacket, Size: "L",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2021년", MetWhere: "편집샵", WhyGot: "오래 입을 수 있을 것 같아서", WornCount: 50, WhyLetGo: "새로운 워크 자켓을 선물받아서", FinalMessage: "앞으로 10년은 더 입을 수 있을 거예요."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item16", UserID: "user4", UserNickname: "GreenThumb", Name: "핸드메이드 뜨개 가방", Description: "직접 뜬 여름용 뜨개 가방입니다.", Category: domain.CategoryAccessory, Size: "FREE",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2023년 6월", MetWhere: "집", WhyGot: "취미로 만들었어요", WornCount: 15, WhyLetGo: "새로운 가방을 만들어서", FinalMessage: "정성이 담긴 가방입니다."}), CreatedAt: now, UpdatedAt: now},
			{ID: "item17", UserID: "user5", UserNickname: "UpcycleArt", Name: "페인팅 커스텀 청바지", Description: "세상에 하나뿐인 페인팅 커스텀 청바지.", Category: domain.CategoryJeans, Size: "28",
				Tag: domain.NewGoodbyeItemTag(domain.GoodbyeTag{MetWhen: "2022년", MetWhere: "작업실", WhyGot: "실험적인 작품", WornCount: 2, WhyLetGo: "전시 종료 후 보관 중", FinalMessage: "당신만의 스타일을 완성해보세요."}), CreatedAt: now, UpdatedAt: now},
		}

		st.Parties = []domain.Party{
			{
				ID: "party1", HostID: "user1", Title: "EcoFashionista의 연말 옷장 정리 파티",
				Description: "함께 모여 옷을 교환하고 지속가능한 패션에 대해 이야기 나눠요. 작은 다과가 준비됩니다.",
				Date:        "2024-12-28", Location: "서울 성수동",
				Details: []string{"Free admission", "Upcycling workshop materials provided"},
				Status:  domain.PartyUpcoming, InvitationCode: "ECOPARTY24",
				Participants: []domain.PartyParticipant{
					{UserID: "user1", Nickname: "EcoFashionista", Status: domain.ParticipantAccepted},
					{UserID: "user2", Nickname: "해삐영", Status: domain.ParticipantAccepted},
				},
				KitDetails: &domain.KitDetails{Participants: 15, ItemsPerPerson: 5, Cost: 80000},
				CreatedAt:  now, UpdatedAt: now,
			},
			{
				ID: "party2", HostID: "user3", Title: "성수동 플리마켓 애프터파티",
				Description: "플리마켓에서 못다한 이야기를 나누는 시간. 남은 옷들을 교환하고 새로운 친구를 만드세요.",
				Date:        "2024-11-15", Location: "서울 성수동",
				Details: []string{"First 50 people", "Eco-friendly detergent for all participants"},
				Status:  domain.PartyUpcoming, InvitationCode: "SEONGSU24",
				Participants: []domain.PartyParticipant{
					{UserID: "user1", Nickname: "EcoFashionista", Status: domain.ParticipantPending},
					{UserID: "user3", Nickname: "StyleSeeker", Status: domain.ParticipantPending},
				},
				KitDetails: &domain.KitDetails{Participants: 20, ItemsPerPerson: 3, Cost: 95000},
				CreatedAt:  now, UpdatedAt: now,
			},
			{
				ID: "party3", HostID: "user6", Title: "지난 여름의 옷 교환 파티",
				Description: "작아지거나, 취향이 변한 여름 옷들을 교환하며 다음 여름을 준비해요.",
				Date:        "2024-09-05", Location: "온라인 (Zoom)",
				Details: []string{"Online event via Zoom", "Breakout rooms for smaller group exchanges"},
				Status:  domain.PartyCompleted, InvitationCode: "SUMMER24",
				Participants: []domain.PartyParticipant{
					{UserID: "user1", Nickname: "EcoFashionista", Status: domain.ParticipantAttended},
					{UserID: "user2", Nickname: "해삐영", Status: domain.ParticipantRejected},
				},
				Impact:     &domain.ImpactStats{ItemsExchanged: 50, WaterSaved: 135000, CO2Reduced: 275},
				KitDetails: &domain.KitDetails{Participants: 10, ItemsPerPerson: 5, Cost: 70000},
				CreatedAt:  now, UpdatedAt: now,
			},
		}

		st.Stories = []domain.Story{
			{ID: "story1", UserID: "user2", PartyID: "party1", Title: "Found my all-time favorite jacket at the flea market!", Author: "해삐영",
				Excerpt: "I went to the Ot-gil flea market in Seongsu-dong. I was surprised by how much bigger it was than I expected...",
				Content: "I went to the Ot-gil flea market in Seongsu-dong. After looking around for about an hour, I found a denim jacket that was exactly my style! It feels great to get such a cool item while also being good for the environment.",
				Tags:    []string{"#EventReview", "#FleaMarket", "#GoodFind"}, Likes: 28, LikedBy: []string{"user1"}},
			{ID: "story2", UserID: "user1", PartyID: "party1", Title: "Making my own eco-bag is not that hard", Author: "EcoFashionista",
				Excerpt: "An old pair of jeans deep in my closet was reborn as a one-of-a-kind eco-bag.",
				Content: "An old pair of jeans deep in my closet was reborn as a one-of-a-kind eco-bag. Here are some tips I learned from the Ot-gil workshop! First, get a sturdy pair of jeans. Second, be brave with the scissors!",
				Tags:    []string{"#Upcycling", "#DIY", "#JeanReform"}, Likes: 45, LikedBy: []string{"user2", "user3"}},
			{ID: "story3", UserID: "user2", PartyID: "party2", Title: "Minimalist life through clothing exchange", Author: "해삐영",
				Excerpt: "A lighter closet makes for a lighter mind.",
				Content: "I sent clothes I no longer wear to people who need them through the app, and got one new piece that is perfect for me. It's not just about having less, but about having things that you truly love and use.",
				Tags:    []string{"#Minimalism", "#ClosetOrganization"}, Likes: 12, LikedBy: []string{}},
		}

		st.Comments = []domain.Comment{
			{ID: "comment1", StoryID: "story1", UserID: "user1", AuthorNickname: "EcoFashionista", Text: "Wow, that jacket looks amazing on you! What a great find.", Timestamp: now.Add(-72 * time.Hour)},
			{ID: "comment2", StoryID: "story1", UserID: "user2", AuthorNickname: "해삐영", Text: "Thank you! I was so lucky.", Timestamp: now.Add(-71 * time.Hour)},
			{ID: "comment3", StoryID: "story2", UserID: "user2", AuthorNickname: "해삐영", Text: "This is such a cool idea! I want to try it too.", Timestamp: now.Add(-48 * time.Hour)},
		}

		st.Reports = []domain.PerformanceReport{
			{ID: "report1", Date: "2023-10-31", Title: "2023년 10월 뉴스레터", Excerpt: "10월 한 달간 총 521개의 의류가 교환되어 약 2,500,000L의 물을 절약했습니다."},
			{ID: "report2", Date: "2023-09-30", Title: "2023년 9월 뉴스레터", Excerpt: "9월에는 '지속가능한 명절' 캠페인을 통해 총 380개의 의류가 새로운 주인을 찾았습니다."},
		}

		st.Credits = []domain.Credit{
			{ID: "credit1", UserID: "user1", Date: "2023-10-25", ActivityName: "빈티지 데님 자켓 기부", Type: domain.EarnedClothing, Amount: 1000},
			{ID: "credit2", UserID: "user1", Date: "2023-11-18", ActivityName: "플리마켓 & 워크샵 참여", Type: domain.EarnedEvent, Amount: 500},
			{ID: "credit3", UserID: "user1", Date: "2023-11-20", ActivityName: "친환경 세제 교환", Type: domain.SpentReward, Amount: 800},
		}

		st.Rewards = []domain.Reward{
			{ID: "reward1", Name: "친환경 주방 비누", Description: "식물성 원료로 만든 안전한 주방 비누입니다.", Cost: 800, Type: domain.RewardGoods},
			{ID: "reward2", Name: "대나무 칫솔 세트", Description: "플라스틱을 줄이는 작은 실천, 대나무 칫솔 (2개입).", Cost: 1200, Type: domain.RewardGoods},
			{ID: "reward3", Name: "온라인 세탁 서비스 10% 할인권", Description: "옷길 제휴 온라인 세탁 서비스 할인 쿠폰입니다.", Cost: 500, Type: domain.RewardService},
		}

		st.Makers = []domain.Maker{
			{ID: "maker1", Name: "리페어 아뜰리에", Specialty: "의류 수선 및 리폼", Location: "서울 성수동", Bio: "20년 경력의 수선 장인이 운영하는 곳. 어떤 옷이든 새롭게 만들어 드립니다."},
			{ID: "maker2", Name: "청바지 연구소", Specialty: "데님 업사이클링", Location: "서울 연남동", Bio: "헌 청바지를 가방, 액세서리 등 유니크한 아이템으로 재탄생시킵니다."},
			{ID: "maker3", Name: "니트 클리닉", Specialty: "니트웨어 전문 수선", Location: "경기 분당", Bio: "구멍나거나 올이 나간 니트를 감쪽같이 복원해 드리는 니트 전문 병원입니다."},
		}

		st.MakerProducts = []domain.MakerProduct{
			{ID: "prod1", MakerID: "maker1", Name: "업사이클 데님 파우치", Description: "헌 청바지로 만든 튼튼하고 스타일리쉬한 파우치입니다.", Price: 1500},
			{ID: "prod2", MakerID: "maker1", Name: "패치워크 컵 받침 세트", Description: "다양한 자투리 천으로 만든 세상에 하나뿐인 컵 받침 4종 세트.", Price: 800},
			{ID: "prod3", MakerID: "maker2", Name: "청바지 포켓 카드지갑", Description: "청바지의 뒷주머니를 그대로 살려 만든 유니크한 카드지갑.", Price: 1200},
			{ID: "prod4", MakerID: "maker2", Name: "데님 헤어 스크런치", Description: "부드러운 데님 원단으로 만들어 머릿결 손상이 적습니다.", Price: 500},
			{ID: "prod5", MakerID: "maker3", Name: "니트 짜투리 인형", Description: "수선 후 남은 니트 조각들로 만든 귀여운 고양이 인형입니다.", Price: 1800},
		}

		return nil
	})
}
