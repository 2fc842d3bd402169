package game

// IsNatural reports whether a two-card score stops all drawing
func IsNatural(score int) bool {
	return score == 8 || score == 9
}

// PlayerDraws reports whether the player takes a third card on a two-card score
func PlayerDraws(playerScore int) bool {
	return playerScore <= 5
}

// BankerDraws reports whether the banker takes a third card.
//
// When the player stood the banker draws on 0-5. When the player drew, the
// decision depends on the raw rank (1-13) of the player's third card.
func BankerDraws(bankerScore int, playerDrew bool, playerThirdRank int) bool {
	if !playerDrew {
		return bankerScore <= 5
	}

	switch bankerScore {
	case 0, 1, 2:
		return true
	case 3:
		return playerThirdRank != 8
	case 4:
		return playerThirdRank >= 2 && playerThirdRank <= 7
	case 5:
		return playerThirdRank >= 4 && playerThirdRank <= 7
	case 6:
		return playerThirdRank == 6 || playerThirdRank == 7
	default:
		return false
	}
}
