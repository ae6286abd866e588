package catalog

// itinerary is the authored schedule for the Tokyo trip. Edit here when
// the plan changes; nothing mutates it at runtime.
var itinerary = []Day{
	{
		Date:        "2024-04-06",
		DisplayDate: "4月06日",
		Weekday:     "週六",
		Title:       "抵達 & 淺草行",
		HeroImage:   "https://i.postimg.cc/qBcPwk9x/20230225-DSC00850.webp",
		Weather:     Weather{Temp: "16°", High: "19°", Low: "12°", Condition: "多雲時晴", Icon: "cloud-sun"},
		Clothing:    "氣溫舒適微涼，建議穿著薄長袖 T 恤搭配輕薄外套，方便穿脫。",
		Activities: []Activity{
			{
				ID:       "1-0",
				Time:     "00:10",
				Title:    "搭乘虎航 (IT216)",
				JPTitle:  "Tigerair Taiwan IT216",
				Location: "桃園機場 T1 -> 羽田機場 T3",
				Notes: []string{
					"訂位代號：TBBBTQ",
					"航班時間：4/6 00:10 AM",
					"前一天上 Visit Japan Web 辦理入境手續",
				},
				Type:        Transport,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/pLkV6f44/hero-20251111-151627.jpg",
				Coordinates: &Coordinates{Lat: 35.5494, Lng: 139.7798},
			},
			{
				ID:          "1-1",
				Time:        "04:30",
				Title:       "飯店 Check in",
				JPTitle:     "品川プリンスホテル アネックスタワー",
				Location:    "品川王子大飯店 別館",
				Notes:       []string{"予約番号：#1668496608", "前往飯店寄放行李、補眠"},
				Type:        Hotel,
				MapQuery:    "Shinagawa Prince Hotel Annex Tower",
				ImageURL:    "https://i.postimg.cc/rFSdytRF/main-double-room-slider.jpg",
				Coordinates: &Coordinates{Lat: 35.627931, Lng: 139.738982},
			},
			{
				ID:          "1-2",
				Title:       "午餐：築地市場",
				JPTitle:     "築地市場",
				Location:    "築地市場",
				Notes:       []string{"吃海鮮", "生魚片"},
				Type:        Food,
				ImageURL:    "https://i.postimg.cc/C584xLby/cc8dda162b0b7b6cae222fdd91f2fdb5.jpg",
				Coordinates: &Coordinates{Lat: 35.665406, Lng: 139.770678},
			},
			{
				ID:          "1-3",
				Title:       "淺草寺",
				JPTitle:     "淺草寺 雷門 (風雷神門)",
				Location:    "淺草寺",
				Notes:       []string{"觀光參拜", "雷門拍照"},
				Type:        Sightseeing,
				ImageURL:    "https://i.postimg.cc/HxqQRDR2/20230523-002525-8836ab82-w1920.png",
				Coordinates: &Coordinates{Lat: 35.714765, Lng: 139.796655},
			},
			{
				ID:          "1-4",
				Title:       "晚餐：炸豬排",
				JPTitle:     "Tonkatsu Oribe",
				Location:    "Tonkatsu Oribe",
				Notes:       []string{"人氣炸豬排店"},
				Type:        Food,
				ImageURL:    "https://i.postimg.cc/cLktPG8C/3842.jpg",
				Coordinates: &Coordinates{Lat: 35.7132, Lng: 139.7970},
			},
			{
				ID:          "1-5",
				Title:       "唐吉軻德＆便利商店",
				JPTitle:     "唐吉訶德 淺草店",
				Location:    "唐吉訶德 淺草店",
				Notes:       []string{"吃飽晃晃", "驚安の殿堂逛生活小物", "Lawson零食飲料採買"},
				Type:        Shopping,
				ImageURL:    "https://i.postimg.cc/k4KVVVYJ/webp.png",
				Coordinates: &Coordinates{Lat: 35.7136, Lng: 139.7938},
			},
		},
	},
	{
		Date:        "2024-04-07",
		DisplayDate: "4月07日",
		Weekday:     "週日",
		Title:       "晴空塔、銀座與夜景",
		HeroImage:   "https://i.postimg.cc/6QGSvwry/lgra7vcg7b2g3zcts3sl.jpg",
		Weather:     Weather{Temp: "18°", High: "22°", Low: "14°", Condition: "晴朗", Icon: "sun"},
		Clothing:    "天氣晴朗溫暖，中午可能稍熱，建議穿著短袖或薄襯衫，並攜帶一件薄外套備用。",
		Activities: []Activity{
			{
				ID:          "2-1",
				Time:        "10:30",
				Title:       "早午餐：敘敘苑",
				JPTitle:     "叙々苑 東京スカイツリータウン・ソラマチ店",
				Location:    "晴空塔",
				Notes:       []string{"吃飯時間：10:30 - 12:30", "高空景觀燒肉", "1月須預約"},
				Type:        Food,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/L8gm4cb2/S-129777667-0.jpg",
				MapURL:      "https://maps.app.goo.gl/gpM2CE25UEK7Knfb7",
				Coordinates: &Coordinates{Lat: 35.710063, Lng: 139.8107},
			},
			{
				ID:       "2-2",
				Title:    "小網神社",
				JPTitle:  "小網神社",
				Location: "小網神社",
				Notes: []string{
					"參拜、求財、洗錢",
					"洗左手→右手→嘴巴→左手→握把",
					"投錢（5圓日幣一枚）",
					"搖鈴、二鞠躬、二拍手、一鞠躬",
				},
				Type:        Sightseeing,
				ImageURL:    "https://i.postimg.cc/cCdJrF85/f92279b2.png",
				Coordinates: &Coordinates{Lat: 35.684347, Lng: 139.778477},
			},
			{
				ID:          "2-3",
				Title:       "千鳥之淵－賞櫻",
				JPTitle:     "千鳥ヶ淵公園",
				Location:    "千鳥之淵公園",
				Notes:       []string{"賞櫻勝地", "划船"},
				Type:        Sightseeing,
				ImageURL:    "https://i.postimg.cc/bNWj56wc/02-165067.png",
				Coordinates: &Coordinates{Lat: 35.694602, Lng: 139.746014},
			},
			{
				ID:          "2-4",
				Title:       "銀座－逛街",
				JPTitle:     "銀座",
				Location:    "銀座",
				Notes:       []string{"pain･maison Ginza (吃鹽可頌)", "無印良品 銀座旗艦店"},
				Type:        Shopping,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/XJHPCJZv/S-129777669-0.jpg",
				Coordinates: &Coordinates{Lat: 35.6735, Lng: 139.7665},
			},
			{
				ID:          "2-5",
				Title:       "晚餐：烤飛魚鹽味拉麵",
				JPTitle:     "焼きあご塩らー麺たかはし 銀座店",
				Location:    "烤飛魚鹽味拉麵 高橋",
				Notes:       []string{"烤飛魚鹽拉麵高橋"},
				Type:        Food,
				ImageURL:    "https://i.postimg.cc/2jqYxRCQ/38ca0904c1ef3509f9bf5a45e582ea64-1024x434.jpg",
				MapURL:      "https://maps.app.goo.gl/GkvQGLh3n9xUCGiR7",
				Coordinates: &Coordinates{Lat: 35.670355, Lng: 139.764519},
			},
			{
				ID:       "2-6",
				Title:    "麻布台之丘 森JP塔",
				JPTitle:  "Azabudai Hills Mori JP Tower",
				Location: "麻布台之丘",
				Notes: []string{
					"遠眺東京鐵塔",
					"在1F搭S2電梯去34樓",
					"於Sky Room Cafe & Bar消費最低800日圓",
					"另加收500日圓入場費",
					"開放至20:00止",
				},
				Type:        Sightseeing,
				ImageURL:    "https://i.postimg.cc/y8TCN7TW/S-129777668-0.jpg",
				Coordinates: &Coordinates{Lat: 35.660683, Lng: 139.745564},
			},
		},
	},
	{
		Date:        "2024-04-08",
		DisplayDate: "4月08日",
		Weekday:     "週一",
		Title:       "原宿、新宿與目黑川",
		HeroImage:   "https://i.postimg.cc/4y8w0F6j/20231107-092508-a96ec287-w1920.webp",
		Weather:     Weather{Temp: "17°", High: "20°", Low: "13°", Condition: "多雲", Icon: "cloud"},
		Clothing:    "多雲天氣，氣溫適中。推薦穿著舒適的長袖衛衣搭配長褲，適合一整天的逛街行程。",
		Activities: []Activity{
			{
				ID:          "3-1",
				Title:       "吉伊卡哇 & 3COINS",
				JPTitle:     "kiddy land ハラジュクテン",
				Location:    "原宿",
				Notes:       []string{"Kiddy Land (吉伊卡哇)", "3COINS 原宿本店"},
				Type:        Shopping,
				ImageURL:    "https://i.postimg.cc/zX5tQR90/85dd747bfdb911185c44aebfe59d8c2a.png",
				Coordinates: &Coordinates{Lat: 35.6677, Lng: 139.7066},
			},
			{
				ID:          "3-2",
				Title:       "午餐：Path",
				JPTitle:     "Path",
				Location:    "Path",
				Notes:       []string{"人氣餐酒館/咖啡廳"},
				Type:        Food,
				ImageURL:    "https://i.postimg.cc/k5Z1JHL5/sukurinshotto-2024-03-04-155532.png",
				Coordinates: &Coordinates{Lat: 35.6644, Lng: 139.6926},
			},
			{
				ID:          "3-3",
				Title:       "新宿－逛街",
				JPTitle:     "新宿駅",
				Location:    "新宿駅",
				Notes:       []string{"新宿御苑", "OS DRUG 新宿西口店", "歌舞伎町"},
				Type:        Sightseeing,
				ImageURL:    "https://i.postimg.cc/wTvm2B7F/a0003759-main.png",
				Coordinates: &Coordinates{Lat: 35.6896, Lng: 139.7005},
			},
			{
				ID:          "3-4",
				Time:        "17:30",
				Title:       "目黑川－賞夜櫻",
				JPTitle:     "中目黒駅",
				Location:    "中目黑站 / 池尻大橋站",
				Notes:       []string{"點燈時間 17:30~20:00", "必拍【櫻橋】、【別所橋】"},
				Type:        Sightseeing,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/WzftCMhf/20230114-171520-c893c6b9-w1920.png",
				Coordinates: &Coordinates{Lat: 35.6455, Lng: 139.6992},
			},
			{
				ID:          "3-5",
				Time:        "20:30",
				Title:       "晚餐：六歌仙燒肉",
				JPTitle:     "六歌仙 新宿西口大ガード店",
				Location:    "新宿",
				Notes:       []string{"吃飯時間：20:30 - 22:30", "1月須預約"},
				Type:        Food,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/T3bhN5G4/P046240765-480.jpg",
				MapURL:      "https://maps.app.goo.gl/Tv991Piimsx4dTuM6",
				Coordinates: &Coordinates{Lat: 35.6931, Lng: 139.6996},
			},
		},
	},
	{
		Date:        "2024-04-09",
		DisplayDate: "4月09日",
		Weekday:     "週二",
		Title:       "澀谷、秋葉原與壽喜燒",
		HeroImage:   "https://i.postimg.cc/4y8w0F6j/20231107-092508-a96ec287-w1920.webp",
		Weather:     Weather{Temp: "15°", High: "18°", Low: "11°", Condition: "陰天", Icon: "cloud"},
		Clothing:    "今日氣溫稍降，陰天可能有風。建議穿著有厚度的長袖或帽T，並攜帶防風外套。",
		Activities: []Activity{
			{
				ID:          "4-1",
				Time:        "11:00",
				Title:       "飯店 Check Out！",
				JPTitle:     "品川プリンスホテル",
				Location:    "品川王子大飯店 別館",
				Notes:       []string{"退房時間：11:00", "行李寄放飯店"},
				Type:        Hotel,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/jqWWnFmb/d7725575.jpg",
				Coordinates: &Coordinates{Lat: 35.627931, Lng: 139.738982},
			},
			{
				ID:          "4-2",
				Title:       "秋葉原",
				JPTitle:     "秋葉原駅",
				Location:    "秋葉原駅",
				Notes:       []string{"逛動漫、電器"},
				Type:        Shopping,
				ImageURL:    "https://i.postimg.cc/VLrN50St/20230428-135124-b546c095-w1920.png",
				Coordinates: &Coordinates{Lat: 35.6984, Lng: 139.7731},
			},
			{
				ID:          "4-3",
				Title:       "午餐：MAGURO to SHARI",
				JPTitle:     "Maguro-to-Shari Shibuya",
				Location:    "澀谷",
				Notes:       []string{"吃壽司", "最後一逛"},
				Type:        Food,
				ImageURL:    "https://i.postimg.cc/k4GmZLKr/image.png",
				MapURL:      "https://maps.app.goo.gl/2U3g3oQD6BvgG2Qb9",
				Coordinates: &Coordinates{Lat: 35.660350, Lng: 139.701850},
			},
			{
				ID:          "4-4",
				Time:        "19:00",
				Title:       "回飯店拿行李",
				JPTitle:     "品川プリンスホテル",
				Location:    "品川王子大飯店 別館",
				Notes:       []string{"必須於19:00前離開飯店"},
				Type:        Transport,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/sx1gYvwL/png.png",
				Coordinates: &Coordinates{Lat: 35.627931, Lng: 139.738982},
			},
			{
				ID:          "4-5",
				Time:        "20:00",
				Title:       "晚餐：壽喜燒 ちんや",
				JPTitle:     "すき焼 ちんや 浅草本店",
				Location:    "淺草",
				Notes:       []string{"吃飯時間：20:00 - 22:00", "1月須預約"},
				Type:        Food,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/2yv8cPNQ/suki-shaochin'ya-Sukiyaki-Chinya-Asakusa-zhao-he-qi-jia-bai-nian-shou-xi-shao-ming-dian-dong-jing-qian-cao.jpg",
				MapURL:      "https://maps.app.goo.gl/RFqTHNt6fPJqoT4z6",
				Coordinates: &Coordinates{Lat: 35.71088, Lng: 139.79255},
			},
		},
	},
	{
		Date:        "2024-04-10",
		DisplayDate: "4月10日",
		Weekday:     "週三",
		Title:       "回台灣",
		HeroImage:   "https://i.postimg.cc/28Vx6GFG/3cd8dfb5-4b48-40d5-8367-97225cf5d4d3.jpg",
		Weather:     Weather{Temp: "19°", High: "23°", Low: "15°", Condition: "晴朗", Icon: "sun"},
		Clothing:    "回程搭機，建議穿著寬鬆、不緊繃的休閒衣物，以確保飛行途中的舒適度。",
		Activities: []Activity{
			{
				ID:       "5-1",
				Time:     "05:15",
				Title:    "回台灣！",
				JPTitle:  "羽田空港 第3ターミナル",
				Location: "品川站 -> 羽田機場",
				Notes: []string{
					"搭乘虎航 (IT217)",
					"訂位代號：TBBBTQ",
					"航班時間：4/10 05:25 AM",
					"搭直達車回品川",
					"轉乘京急線前往羽田機場第三航廈",
				},
				Type:        Transport,
				Important:   true,
				ImageURL:    "https://i.postimg.cc/pLkV6f44/hero-20251111-151627.jpg",
				Coordinates: &Coordinates{Lat: 35.5445, Lng: 139.7686},
			},
		},
	},
}
